package export

import "dotgrid/canvas"

// TextExporter exports the rendered braille frame as plain text.
type TextExporter struct{}

// Export returns the frame with a trailing newline.
func (e *TextExporter) Export(c *canvas.Canvas) (string, error) {
	if c == nil {
		return "", ErrNilCanvas
	}
	return c.Frame() + "\n", nil
}

// FileExtension returns the recommended file extension.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// FormatName returns the format name.
func (e *TextExporter) FormatName() string {
	return "Braille text"
}
