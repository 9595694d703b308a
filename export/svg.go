package export

import (
	"fmt"
	"strings"

	"dotgrid/canvas"
)

// svgScale is the edge length of one pixel in SVG units.
const svgScale = 4

// SVGExporter exports the set pixels as an SVG document: one filled circle
// per pixel on a dark background, in row-major order.
type SVGExporter struct{}

// Export renders the canvas as an SVG document.
func (e *SVGExporter) Export(c *canvas.Canvas) (string, error) {
	if c == nil {
		return "", ErrNilCanvas
	}

	_, maxRow := c.RowRange()
	_, maxCol := c.ColRange()
	width := (maxCol + 1) * 2 * svgScale
	height := (maxRow + 1) * 4 * svgScale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&sb, `  <rect width="%d" height="%d" fill="#1c1c1c"/>`+"\n", width, height)

	for y := 0; y <= maxRow*4+3; y++ {
		for x := 0; x <= maxCol*2+1; x++ {
			if !c.Get(x, y) {
				continue
			}
			fmt.Fprintf(&sb, `  <circle cx="%d" cy="%d" r="2" fill="#e6e6e6"/>`+"\n",
				x*svgScale+svgScale/2, y*svgScale+svgScale/2)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// FileExtension returns the recommended file extension.
func (e *SVGExporter) FileExtension() string {
	return ".svg"
}

// FormatName returns the format name.
func (e *SVGExporter) FormatName() string {
	return "SVG"
}
