package game

import "classic-snake/game/types"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	UUID      string
	Tick      uint64
	Snake     []types.Point // head first
	Food      types.Point
	Direction types.Direction
	GameOver  bool
	Cause     types.CollisionType

	GridWidth  int
	GridHeight int
	TileSize   int
	Palette    types.Palette
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		UUID:       g.id,
		Tick:       g.ticks,
		Snake:      g.snake.Cells(),
		Food:       g.foodMgr.GetFood(),
		Direction:  g.snake.Direction,
		GameOver:   g.gameOver,
		Cause:      g.cause,
		GridWidth:  g.cfg.GridWidth,
		GridHeight: g.cfg.GridHeight,
		TileSize:   g.cfg.TileSize,
		Palette:    g.cfg.Palette,
	}
}

// Length is the number of snake segments.
func (s Snapshot) Length() int {
	return len(s.Snake)
}
