package ui

import (
	"fmt"
	"time"

	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const captionFontSize = 20

// Window is the raylib front end. Its target FPS is the tick rate, so
// EndDrawing paces the loop and doubles as the clock.
type Window struct {
	cfg   types.Config
	title string
}

func NewWindow(cfg types.Config, title string) *Window {
	return &Window{cfg: cfg, title: title}
}

func (w *Window) Open() {
	width, height := w.cfg.ScreenSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), w.title)
	rl.SetTargetFPS(int32(w.cfg.TickRate))
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// ShouldClose reports a close request from the window manager or Escape.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PollInput drains raylib's key queue into q. Only the last mapped key
// survives, matching the queue's latest-wins rule.
func (w *Window) PollInput(q *loop.DirectionQueue) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := KeyDirection(key); ok {
			q.Push(dir)
		}
	}
}

// Hold redraws the final snapshot until d passes, a key is pressed or the
// window is closed. EndDrawing keeps the redraws at the tick rate.
func (w *Window) Hold(snap game.Snapshot, d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) && !w.ShouldClose() {
		if rl.GetKeyPressed() != 0 {
			return
		}
		w.Draw(snap)
	}
}

func (w *Window) Draw(snap game.Snapshot) error {
	tile := int32(snap.TileSize)
	width := int32(snap.GridWidth) * tile
	height := int32(snap.GridHeight) * tile

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(toRL(snap.Palette.Background))

	// Grid lines
	lines := toRL(snap.Palette.GridLines)
	for i := int32(0); i <= int32(snap.GridWidth); i++ {
		rl.DrawLine(i*tile, 0, i*tile, height, lines)
	}
	for i := int32(0); i <= int32(snap.GridHeight); i++ {
		rl.DrawLine(0, i*tile, width, i*tile, lines)
	}

	grid := types.Grid{Width: snap.GridWidth, Height: snap.GridHeight}
	w.drawTile(snap.Food, tile, toRL(snap.Palette.Food), toRL(snap.Palette.Background))

	body := toRL(snap.Palette.Body)
	for _, p := range snap.Snake {
		// The head may sit outside the grid on the frame that ends the game.
		if !grid.Contains(p) {
			continue
		}
		w.drawTile(p, tile, body, toRL(snap.Palette.Background))
	}

	if snap.GameOver {
		caption := fmt.Sprintf("Game Over (%v)", snap.Cause)
		textWidth := rl.MeasureText(caption, captionFontSize)
		rl.DrawText(caption, (width-textWidth)/2, height/2-captionFontSize/2, captionFontSize, toRL(snap.Palette.Food))
	}
	return nil
}

func (w *Window) drawTile(p types.Point, tile int32, fill, edge rl.Color) {
	x := int32(p.X) * tile
	y := int32(p.Y) * tile
	rl.DrawRectangle(x, y, tile, tile, fill)
	rl.DrawRectangleLines(x, y, tile, tile, edge)
}

func toRL(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
