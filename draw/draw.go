// Package draw rasterizes shapes onto a canvas. All primitives reduce to
// canvas.Set calls, so they inherit the canvas's coordinate domain.
package draw

import (
	"dotgrid/canvas"
	"dotgrid/geometry"
)

// Points returns the pixel coordinates of the straight segment from
// (x1, y1) to (x2, y2), both endpoints included, in draw order. The segment
// is sampled at max(|dx|, |dy|)+1 evenly spaced steps with coordinates
// rounded half-up, which leaves no gaps at any slope and yields the same
// pixel set when the endpoints are swapped.
func Points(x1, y1, x2, y2 int) []geometry.Point {
	dx := x2 - x1
	dy := y2 - y1

	steps := geometry.Max(geometry.Abs(dx), geometry.Abs(dy))
	if steps == 0 {
		return []geometry.Point{{X: x1, Y: y1}}
	}

	pts := make([]geometry.Point, 0, steps+1)
	for s := 0; s <= steps; s++ {
		pts = append(pts, geometry.Point{
			X: x1 + geometry.RoundDiv(s*dx, steps),
			Y: y1 + geometry.RoundDiv(s*dy, steps),
		})
	}
	return pts
}

// Line draws a straight segment from (x1, y1) to (x2, y2) onto the canvas,
// endpoints included. Horizontal, vertical, diagonal and arbitrary slopes
// in any direction are handled; a zero-length segment sets a single pixel.
func Line(c *canvas.Canvas, x1, y1, x2, y2 int) {
	for _, p := range Points(x1, y1, x2, y2) {
		c.Set(p.X, p.Y)
	}
}

// Rectangle draws the outline of the axis-aligned rectangle with corners
// (x1, y1) and (x2, y2). The interior is left untouched.
func Rectangle(c *canvas.Canvas, x1, y1, x2, y2 int) {
	Line(c, x1, y1, x2, y1)
	Line(c, x1, y1, x1, y2)
	Line(c, x1, y2, x2, y2)
	Line(c, x2, y1, x2, y2)
}

// EllipseCenter draws the ellipse centered on (xm, ym) with horizontal
// semi-axis a and vertical semi-axis b, using the midpoint method.
// Quadrant reflections that would land at negative coordinates are skipped.
func EllipseCenter(c *canvas.Canvas, xm, ym, a, b int) {
	if a == 0 && b == 0 {
		c.Set(xm, ym)
		return
	}

	a2 := a * a
	b2 := b * b
	dx, dy := 0, b
	err := b2 - (2*b-1)*a2

	for {
		c.Set(xm+dx, ym+dy)
		if xm >= dx {
			c.Set(xm-dx, ym+dy)
			if ym >= dy {
				c.Set(xm-dx, ym-dy)
			}
		}
		if ym >= dy {
			c.Set(xm+dx, ym-dy)
		}

		e2 := err + err
		if e1 := (2*dx + 1) * b2; e2 < e1 {
			dx++
			err += e1
		}
		if e1 := (2*dy - 1) * a2; e2 > -e1 {
			if dy <= 1 {
				break
			}
			dy--
			err -= e1
		}
	}

	// Flat ellipses leave the horizontal extremes uncovered; close them.
	for dx < a {
		dx++
		c.Set(xm+dx, ym)
		if xm >= dx {
			c.Set(xm-dx, ym)
		}
	}
}

// EllipseBox draws the ellipse inscribed in the axis-aligned box with
// corners (x1, y1) and (x2, y2).
func EllipseBox(c *canvas.Canvas, x1, y1, x2, y2 int) {
	dx := (x1 - x2) / 2
	dy := (y1 - y2) / 2
	EllipseCenter(c, x2+dx, y2+dy, geometry.Abs(dx), geometry.Abs(dy))
}
