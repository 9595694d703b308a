// Package export converts canvas frames to file formats.
package export

import (
	"errors"
	"fmt"

	"dotgrid/canvas"
)

// ErrNilCanvas is returned when an exporter is handed a nil canvas.
var ErrNilCanvas = errors.New("canvas is nil")

// Format represents an export format.
type Format string

const (
	// FormatText exports the braille frame as plain text.
	FormatText Format = "text"
	// FormatSVG exports the set pixels as an SVG document.
	FormatSVG Format = "svg"
)

// Exporter converts a canvas to a target format.
type Exporter interface {
	// Export renders the canvas in the target format.
	Export(c *canvas.Canvas) (string, error)
	// FileExtension returns the recommended file extension.
	FileExtension() string
	// FormatName returns a human-readable name for the format.
	FormatName() string
}

// New creates an exporter for the specified format.
func New(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return &TextExporter{}, nil
	case FormatSVG:
		return &SVGExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt":
		return FormatText, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Formats returns all available export formats.
func Formats() []Format {
	return []Format{FormatText, FormatSVG}
}
