// Package term renders the game in a terminal with tcell. Every grid tile
// is two columns wide so it looks roughly square.
package term

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	originX = 1
	originY = 1
	tileW   = 2
)

type Terminal struct {
	screen tcell.Screen
	keys   chan struct{}
}

// New opens the controlling terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an already initialized screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen, keys: make(chan struct{}, 1)}
}

// Close restores the terminal. Pending PollEvent calls return nil afterwards.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Listen reads key events until the screen is closed. Directions go to q;
// a quit key calls quit. Run it on its own goroutine.
func (t *Terminal) Listen(q *loop.DirectionQueue, quit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			t.signalKey()
			if IsQuit(ev.Key(), ev.Rune()) {
				quit()
				continue
			}
			if dir, ok := KeyDirection(ev.Key(), ev.Rune()); ok {
				q.Push(dir)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// KeyPressed fires on the next key Listen reads. Presses from before the
// call are dropped.
func (t *Terminal) KeyPressed() <-chan struct{} {
	select {
	case <-t.keys:
	default:
	}
	return t.keys
}

func (t *Terminal) signalKey() {
	select {
	case t.keys <- struct{}{}:
	default:
	}
}

func (t *Terminal) Draw(snap game.Snapshot) error {
	t.screen.Clear()

	bg := tcell.StyleDefault.Background(toTcell(snap.Palette.Background))
	t.drawBorder(snap.GridWidth, snap.GridHeight, bg)
	for y := 0; y < snap.GridHeight; y++ {
		for x := 0; x < snap.GridWidth; x++ {
			t.fillTile(types.Point{X: x, Y: y}, bg)
		}
	}

	grid := types.Grid{Width: snap.GridWidth, Height: snap.GridHeight}
	t.fillTile(snap.Food, tcell.StyleDefault.Background(toTcell(snap.Palette.Food)))
	body := tcell.StyleDefault.Background(toTcell(snap.Palette.Body))
	for _, p := range snap.Snake {
		if grid.Contains(p) {
			t.fillTile(p, body)
		}
	}

	status := "arrows/wasd steer, q quits"
	style := tcell.StyleDefault
	if snap.GameOver {
		status = fmt.Sprintf("Game Over (%v), any key exits", snap.Cause)
		style = style.Foreground(toTcell(snap.Palette.Food)).Bold(true)
	}
	t.drawText(originX, originY+snap.GridHeight+1, status, style)

	t.screen.Show()
	return nil
}

func (t *Terminal) fillTile(p types.Point, style tcell.Style) {
	col := originX + p.X*tileW
	row := originY + p.Y
	for i := 0; i < tileW; i++ {
		t.screen.SetContent(col+i, row, ' ', nil, style)
	}
}

func (t *Terminal) drawBorder(w, h int, style tcell.Style) {
	left, right := originX-1, originX+w*tileW
	top, bottom := originY-1, originY+h
	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
