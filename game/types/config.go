package types

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// FoodPlacement selects how food is relocated after being eaten.
type FoodPlacement int

const (
	// PlaceAvoidSnake re-rolls until the food lands on a free cell.
	PlaceAvoidSnake FoodPlacement = iota
	// PlaceAnywhere rolls once and may put food under the snake.
	PlaceAnywhere
)

func (f FoodPlacement) String() string {
	if f == PlaceAnywhere {
		return "anywhere"
	}
	return "avoid-snake"
}

// Palette holds the colors handed to renderers.
type Palette struct {
	Background Color
	Body       Color
	Food       Color
	GridLines  Color
}

// Config holds all game parameters. A Game keeps its own copy.
type Config struct {
	// Grid
	GridWidth  int // Number of cells along X
	GridHeight int // Number of cells along Y
	TileSize   int // Pixel size of one cell when drawn in a window

	// Timing
	TickRate     int           // Simulation ticks per second
	GameOverHold time.Duration // How long front ends keep the final frame up

	// Start position, head first
	Start          []Point
	StartDirection Direction

	FoodPlacement FoodPlacement
	Seed          uint64 // 0 seeds from the clock

	Palette Palette
}

// DefaultConfig returns the 600x600 px, 24x24 tile, 10 Hz setup.
func DefaultConfig() Config {
	return Config{
		GridWidth:  24,
		GridHeight: 24,
		TileSize:   25,

		TickRate:     10,
		GameOverHold: 3 * time.Second,

		Start:          []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		StartDirection: Right,

		FoodPlacement: PlaceAvoidSnake,

		Palette: Palette{
			Background: Color{R: 0, G: 0, B: 0},
			Body:       Color{R: 0, G: 255, B: 0},
			Food:       Color{R: 255, G: 0, B: 0},
			GridLines:  Color{R: 40, G: 40, B: 40},
		},
	}
}

func (c Config) Grid() Grid {
	return Grid{Width: c.GridWidth, Height: c.GridHeight}
}

// TickPeriod is the time between two simulation ticks.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// ScreenSize returns the window size in pixels.
func (c Config) ScreenSize() (int, int) {
	return c.GridWidth * c.TileSize, c.GridHeight * c.TileSize
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.GridWidth, c.GridHeight)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	}
	if c.GameOverHold < 0 {
		return fmt.Errorf("%w: game over hold %v is negative", ErrInvalidConfig, c.GameOverHold)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: start direction %v", ErrInvalidConfig, c.StartDirection)
	}
	if len(c.Start) == 0 {
		return fmt.Errorf("%w: empty start snake", ErrInvalidConfig)
	}
	if c.FoodPlacement != PlaceAvoidSnake && c.FoodPlacement != PlaceAnywhere {
		return fmt.Errorf("%w: food placement %d", ErrInvalidConfig, c.FoodPlacement)
	}

	grid := c.Grid()
	seen := make(map[Point]bool, len(c.Start))
	for i, p := range c.Start {
		if !grid.Contains(p) {
			return fmt.Errorf("%w: start cell %v outside grid", ErrInvalidConfig, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: start cell %v repeated", ErrInvalidConfig, p)
		}
		seen[p] = true
		if i > 0 {
			prev := c.Start[i-1]
			if abs(p.X-prev.X)+abs(p.Y-prev.Y) != 1 {
				return fmt.Errorf("%w: start cells %v and %v not adjacent", ErrInvalidConfig, prev, p)
			}
		}
	}
	if len(c.Start) > 1 && c.Start[0].Add(c.StartDirection.ToPoint()) == c.Start[1] {
		return fmt.Errorf("%w: start direction %v points into the body", ErrInvalidConfig, c.StartDirection)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
