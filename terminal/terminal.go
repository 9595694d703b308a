// Package terminal connects a canvas to a real terminal: writing frames to
// a sink, querying the terminal's pixel capacity, and animating frames on a
// tcell screen. The canvas itself never touches the terminal.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"

	"dotgrid/canvas"
)

// Draw writes the canvas frame, followed by a newline, to w.
func Draw(w io.Writer, c *canvas.Canvas) error {
	_, err := io.WriteString(w, c.Frame()+"\n")
	return err
}

// Size returns the pixel capacity of the controlling terminal: two pixels
// per column and four per row.
func Size() (width, height int, err error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, err
	}
	return cols * 2, rows * 4, nil
}
