// Package demo provides named scenes that exercise the canvas, rasterizer
// and turtle. Each scene renders one animation frame; static scenes ignore
// the frame counter.
package demo

import (
	"fmt"
	"math"
	"sort"

	"dotgrid/canvas"
	"dotgrid/draw"
	"dotgrid/geometry"
	"dotgrid/turtle"
)

// Scene renders one frame of a demo. width is a pixel-space width hint;
// scenes with a fixed natural size may ignore it.
type Scene func(frame, width int) *canvas.Canvas

var scenes = map[string]Scene{
	"spiral": Spiral,
	"arcs":   Arcs,
	"sine":   Sine,
	"orbit":  Orbit,
}

// Names returns the available scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders one frame of the named scene.
func Render(name string, frame, width int) (*canvas.Canvas, error) {
	scene, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo scene: %s", name)
	}
	return scene(frame, width), nil
}

// Spiral walks a turtle through 100 shrinking forward steps, turning 10
// degrees each time. The frame counter spins the starting heading.
func Spiral(frame, width int) *canvas.Canvas {
	t := turtle.New(50, 0)
	t.Right(float64(frame * 4))
	for n := 0; n < 100; n++ {
		t.Forward(10 - float64(n)/10)
		t.Right(10)
	}
	return t.Canvas
}

// Arcs draws seven nested half-arcs rising from a common baseline.
func Arcs(frame, width int) *canvas.Canvas {
	t := turtle.New(0, 0)
	for k := 0; k < 7; k++ {
		t.Up()
		t.Teleport(float64(k)*3, 50)
		t.Rotation = -90
		t.Down()
		for i := 0; i < 150; i++ {
			t.Forward(1 - float64(k)/16)
			t.Right(180.0 / 150)
		}
	}
	return t.Canvas
}

// Sine draws one sine wave across the given width; the frame counter
// shifts its phase.
func Sine(frame, width int) *canvas.Canvas {
	if width < 2 {
		width = 2
	}

	c := canvas.New()
	prevY := 0
	for x := 0; x < width; x++ {
		y := 12 + int(math.Round(10*math.Sin(float64(x+2*frame)*(2*math.Pi/60))))
		if x == 0 {
			c.Set(x, y)
		} else {
			draw.Line(c, x-1, prevY, x, y)
		}
		prevY = y
	}
	return c
}

// Orbit draws a fixed outer ellipse with an inner ellipse that breathes
// with the frame counter.
func Orbit(frame, width int) *canvas.Canvas {
	if width < 24 {
		width = 24
	}

	c := canvas.New()
	cx := width / 2
	const cy = 28

	a := geometry.Min(width/2-2, 48)
	draw.EllipseCenter(c, cx, cy, a, 24)

	b := 6 + int(math.Round(5*math.Sin(float64(frame)*0.15)))
	draw.EllipseBox(c, cx-a/2, cy-b, cx+a/2, cy+b)
	return c
}
