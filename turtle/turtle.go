// Package turtle provides turtle graphics over a braille canvas: a pen that
// walks the pixel plane drawing line segments as it moves.
package turtle

import (
	"math"

	"dotgrid/canvas"
	"dotgrid/draw"
)

// Turtle walks around a canvas drawing lines. Positions are kept as floats
// and rounded to the nearest pixel when drawing; rounded coordinates are
// clamped at zero. Rotation is in degrees, clockwise, with 0 facing right.
type Turtle struct {
	X, Y     float64
	Rotation float64
	Brush    bool
	Canvas   *canvas.Canvas
}

// New creates a turtle at the given coordinates on a fresh canvas, brush
// down, facing right.
func New(x, y float64) *Turtle {
	return FromCanvas(x, y, canvas.New())
}

// FromCanvas creates a turtle at the given coordinates on the provided
// canvas, brush down, facing right.
func FromCanvas(x, y float64, c *canvas.Canvas) *Turtle {
	return &Turtle{X: x, Y: y, Brush: true, Canvas: c}
}

// Up lifts the brush; subsequent moves do not draw.
func (t *Turtle) Up() {
	t.Brush = false
}

// Down puts the brush down; subsequent moves draw.
func (t *Turtle) Down() {
	t.Brush = true
}

// ToggleBrush flips the brush state.
func (t *Turtle) ToggleBrush() {
	t.Brush = !t.Brush
}

// Forward moves the turtle dist steps along its current heading.
func (t *Turtle) Forward(dist float64) {
	rad := t.Rotation * (math.Pi / 180)
	t.Teleport(t.X+math.Cos(rad)*dist, t.Y+math.Sin(rad)*dist)
}

// Back moves the turtle dist steps against its current heading.
func (t *Turtle) Back(dist float64) {
	t.Forward(-dist)
}

// Right turns the turtle clockwise by angle degrees.
func (t *Turtle) Right(angle float64) {
	t.Rotation += angle
}

// Left turns the turtle counter-clockwise by angle degrees.
func (t *Turtle) Left(angle float64) {
	t.Rotation -= angle
}

// Teleport moves the turtle to (x, y), drawing a line from the old position
// when the brush is down.
func (t *Turtle) Teleport(x, y float64) {
	if t.Brush {
		draw.Line(t.Canvas, pixel(t.X), pixel(t.Y), pixel(x), pixel(y))
	}
	t.X = x
	t.Y = y
}

// Frame renders the turtle's canvas.
func (t *Turtle) Frame() string {
	return t.Canvas.Frame()
}

// pixel rounds a position to the nearest pixel, clamped at zero.
func pixel(v float64) int {
	p := int(math.Round(v))
	if p < 0 {
		return 0
	}
	return p
}
