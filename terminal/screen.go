package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"dotgrid/canvas"
)

// Screen displays canvas frames on a tcell screen.
type Screen struct {
	tc tcell.Screen
}

// NewScreen creates a screen backed by the real terminal.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// NewSimulationScreen creates a screen backed by an in-memory terminal,
// for tests.
func NewSimulationScreen() *Screen {
	return &Screen{tc: tcell.NewSimulationScreen("UTF-8")}
}

// Init initializes the underlying screen and hides the cursor. Callers must
// pair it with Fini to restore the terminal.
func (s *Screen) Init() error {
	if err := s.tc.Init(); err != nil {
		return err
	}
	s.tc.HideCursor()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the screen dimensions in character cells.
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// Blit replaces the screen contents with the canvas: each non-empty cell is
// placed at its own cell coordinate, cropped to the screen. Show must be
// called to make the result visible.
func (s *Screen) Blit(c *canvas.Canvas) {
	s.tc.Clear()

	minRow, maxRow := c.RowRange()
	minCol, maxCol := c.ColRange()
	width, height := s.tc.Size()

	for row := minRow; row <= maxRow && row < height; row++ {
		for col := minCol; col <= maxCol && col < width; col++ {
			mask := c.Mask(col, row)
			if mask == 0 {
				continue
			}
			s.tc.SetContent(col, row, rune(0x2800+int(mask)), nil, tcell.StyleDefault)
		}
	}
}

// Show makes the last Blit visible.
func (s *Screen) Show() {
	s.tc.Show()
}

// Animate repaints the screen from render at the given interval, starting
// at frame 0, until a key is pressed or the screen is closed.
func (s *Screen) Animate(render func(frame int) *canvas.Canvas, interval time.Duration) {
	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			ev := s.tc.PollEvent()
			if ev == nil {
				return
			}
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				s.tc.Sync()
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		s.Blit(render(frame))
		s.Show()

		select {
		case <-quit:
			return
		case <-ticker.C:
		}
	}
}
