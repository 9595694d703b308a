package canvas

import (
	"math/bits"
	"strings"
)

// brailleBase is U+2800, the braille pattern with all dots off. Adding a
// cell's dot mask to it yields the glyph for that dot combination.
const brailleBase = 0x2800

// dotMasks maps a sub-pixel offset within a cell to its dot bit, indexed as
// dotMasks[y%4][x%2]. The values follow the Unicode braille dot numbering:
// dots 1-6 occupy bits 0-5 column-major, dots 7-8 (the bottom row) occupy
// bits 6-7. Transposing or reordering this table mirrors or rotates every
// rendered frame, so it is pinned by tests against these literal values.
var dotMasks = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Cell identifies one terminal character position. Each cell covers a block
// of pixels 2 wide and 4 tall: the cell for pixel (x, y) is (x/2, y/4).
type Cell struct {
	Col, Row int
}

// Canvas is a sparse, unbounded pixel surface rendered as braille
// characters. Pixels live in a 2-D space with the origin at the top left,
// x increasing rightward and y increasing downward. Coordinates are
// non-negative; calls with a negative coordinate are ignored.
//
// Thread Safety:
// Canvas is NOT thread-safe. All operations must be synchronized externally
// if used from multiple goroutines, e.g. with a mutex around the whole
// canvas.
//
// Performance Characteristics:
//   - Set/Unset/Toggle/Get: O(1)
//   - RowRange/ColRange: O(cells)
//   - Frame: O(bounding box area)
type Canvas struct {
	cells map[Cell]uint8
}

// New creates an empty canvas. The canvas grows to accommodate whatever is
// drawn; there is no fixed size.
func New() *Canvas {
	return &Canvas{cells: make(map[Cell]uint8)}
}

// cellMask returns the cell containing pixel (x, y) and the dot bit for the
// pixel's position within it.
func cellMask(x, y int) (Cell, uint8) {
	return Cell{Col: x / 2, Row: y / 4}, dotMasks[y%4][x%2]
}

// Set marks the pixel at (x, y) as on.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cell, mask := cellMask(x, y)
	c.cells[cell] |= mask
}

// Unset marks the pixel at (x, y) as off. Cells with no remaining dots are
// dropped from the canvas.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cell, mask := cellMask(x, y)
	cur, ok := c.cells[cell]
	if !ok {
		return
	}
	if cur &^= mask; cur == 0 {
		delete(c.cells, cell)
	} else {
		c.cells[cell] = cur
	}
}

// Toggle flips the pixel at (x, y).
func (c *Canvas) Toggle(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cell, mask := cellMask(x, y)
	if cur := c.cells[cell] ^ mask; cur == 0 {
		delete(c.cells, cell)
	} else {
		c.cells[cell] = cur
	}
}

// Get reports whether the pixel at (x, y) is on. Reading never mutates the
// canvas; pixels outside every stored cell are off.
func (c *Canvas) Get(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cell, mask := cellMask(x, y)
	return c.cells[cell]&mask != 0
}

// Clear removes every pixel from the canvas.
func (c *Canvas) Clear() {
	c.cells = make(map[Cell]uint8)
}

// Mask returns the dot mask of the given cell, or 0 if the cell holds no
// dots.
func (c *Canvas) Mask(col, row int) uint8 {
	return c.cells[Cell{Col: col, Row: row}]
}

// Count returns the number of pixels currently set.
func (c *Canvas) Count() int {
	n := 0
	for _, mask := range c.cells {
		n += bits.OnesCount8(mask)
	}
	return n
}

// RowRange returns the inclusive range of cell rows containing dots.
// An empty canvas returns (0, 0).
func (c *Canvas) RowRange() (min, max int) {
	first := true
	for cell := range c.cells {
		if first || cell.Row < min {
			min = cell.Row
		}
		if first || cell.Row > max {
			max = cell.Row
		}
		first = false
	}
	return min, max
}

// ColRange returns the inclusive range of cell columns containing dots.
// An empty canvas returns (0, 0).
func (c *Canvas) ColRange() (min, max int) {
	first := true
	for cell := range c.cells {
		if first || cell.Col < min {
			min = cell.Col
		}
		if first || cell.Col > max {
			max = cell.Col
		}
		first = false
	}
	return min, max
}

// Rows returns one string per cell row of the bounding box, top to bottom.
// Every row has the same width: cells without dots render as U+2800, the
// blank braille pattern, so columns stay aligned. An empty canvas returns
// nil.
//
// Note that each row is four pixels tall and each character two pixels
// wide.
func (c *Canvas) Rows() []string {
	if len(c.cells) == 0 {
		return nil
	}

	minRow, maxRow := c.RowRange()
	minCol, maxCol := c.ColRange()

	rows := make([]string, 0, maxRow-minRow+1)
	var sb strings.Builder
	for row := minRow; row <= maxRow; row++ {
		sb.Reset()
		sb.Grow((maxCol - minCol + 1) * 3) // braille glyphs are 3 bytes in UTF-8
		for col := minCol; col <= maxCol; col++ {
			sb.WriteRune(rune(brailleBase + int(c.cells[Cell{Col: col, Row: row}])))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Frame renders the canvas as a multi-line string, one line per cell row of
// the bounding box, joined by newlines. An empty canvas renders as "".
func (c *Canvas) Frame() string {
	return strings.Join(c.Rows(), "\n")
}

// String implements fmt.Stringer.
func (c *Canvas) String() string {
	return c.Frame()
}
