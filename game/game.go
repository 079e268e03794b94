package game

import (
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
)

// Event flags what happened during one Advance.
type Event uint8

const (
	EventAte Event = 1 << iota
	EventGameOver

	EventNone Event = 0
)

func (e Event) Has(flag Event) bool {
	return e&flag != 0
}

// Game is the authoritative state of one round: snake, food and the
// game-over flag. It is owned by a single loop goroutine and is not safe
// for concurrent use.
type Game struct {
	id   string
	cfg  types.Config
	seed uint64

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager

	gameOver bool
	cause    types.CollisionType
	ticks    uint64
}

// NewGame validates cfg, copies it and places the first food.
func NewGame(cfg types.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := make([]types.Point, len(cfg.Start))
	copy(start, cfg.Start)
	cfg.Start = start

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	g := &Game{
		id:           uuid.New().String(),
		cfg:          cfg,
		seed:         seed,
		snake:        entity.NewSnake(start, cfg.StartDirection),
		foodMgr:      manager.NewFoodManager(grid, cfg.FoodPlacement, seed),
		collisionMgr: manager.NewCollisionManager(grid),
	}
	g.PlaceFood()
	return g, nil
}

// ID is the random session id assigned by NewGame.
func (g *Game) ID() string {
	return g.id
}

// Config returns a copy of the validated configuration. Changing it has no
// effect on the game.
func (g *Game) Config() types.Config {
	cfg := g.cfg
	cfg.Start = make([]types.Point, len(g.cfg.Start))
	copy(cfg.Start, g.cfg.Start)
	return cfg
}

// Seed is the food RNG seed actually used, after a zero seed was replaced
// by the clock.
func (g *Game) Seed() uint64 {
	return g.seed
}

// SetDirection turns the snake. The exact reverse of the current direction
// is ignored, as are values that are not one of the four directions.
func (g *Game) SetDirection(dir types.Direction) bool {
	if g.gameOver {
		return false
	}
	return g.snake.SetDirection(dir)
}

// Advance moves the snake one cell. Once the game is over it does nothing.
func (g *Game) Advance() Event {
	if g.gameOver {
		return EventNone
	}
	g.ticks++

	newHead := g.snake.NextHead()
	g.snake.PushFront(newHead)

	event := EventNone
	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		g.PlaceFood()
		event |= EventAte
	} else {
		g.snake.PopBack()
	}

	if cause := g.collisionMgr.Check(g.snake); cause != types.NoCollision {
		g.gameOver = true
		g.cause = cause
		event |= EventGameOver
	}
	return event
}

// PlaceFood relocates the food according to the configured placement policy.
func (g *Game) PlaceFood() types.Point {
	return g.foodMgr.Place(g.snake)
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// Cause reports what ended the game, or NoCollision while running.
func (g *Game) Cause() types.CollisionType {
	return g.cause
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

// Snake returns the segments head first. The slice is a copy.
func (g *Game) Snake() []types.Point {
	return g.snake.Cells()
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}
