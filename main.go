package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dotgrid/canvas"
	"dotgrid/demo"
	"dotgrid/export"
	"dotgrid/terminal"
)

func main() {
	var (
		list      = flag.Bool("list", false, "List available demo scenes")
		scene     = flag.String("demo", "spiral", "Demo scene to render")
		formatStr = flag.String("format", "", "Export format: text, svg (default: print the frame)")
		outFile   = flag.String("o", "", "Output file (default: stdout)")
		animate   = flag.Bool("animate", false, "Animate the scene on the terminal until a key is pressed")
		fps       = flag.Int("fps", 30, "Frames per second in animate mode")
		width     = flag.Int("width", 0, "Scene width in pixels (default: terminal width, else 160)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders demo scenes as braille pixel graphics.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Print the spiral scene\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo sine -animate      # Animate a sine wave\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo orbit -format svg -o orbit.svg\n", os.Args[0])
	}
	flag.Parse()

	if *list {
		for _, name := range demo.Names() {
			fmt.Println(name)
		}
		return
	}

	pixelWidth := *width
	if pixelWidth <= 0 {
		if w, _, err := terminal.Size(); err == nil {
			pixelWidth = w
		} else {
			pixelWidth = 160
		}
	}

	if *animate {
		if err := runAnimation(*scene, pixelWidth, *fps); err != nil {
			fatal(err)
		}
		return
	}

	c, err := demo.Render(*scene, 0, pixelWidth)
	if err != nil {
		fatal(err)
	}

	if *formatStr != "" {
		if err := exportFrame(c, *formatStr, *outFile); err != nil {
			fatal(err)
		}
		return
	}

	if err := terminal.Draw(os.Stdout, c); err != nil {
		fatal(err)
	}
}

func exportFrame(c *canvas.Canvas, formatStr, outFile string) error {
	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	exporter, err := export.New(format)
	if err != nil {
		return err
	}
	out, err := exporter.Export(c)
	if err != nil {
		return fmt.Errorf("failed to export frame: %w", err)
	}

	if outFile != "" {
		return os.WriteFile(outFile, []byte(out), 0644)
	}
	fmt.Print(out)
	return nil
}

func runAnimation(scene string, pixelWidth, fps int) error {
	// Validate the scene name before taking over the terminal.
	if _, err := demo.Render(scene, 0, pixelWidth); err != nil {
		return err
	}
	if fps <= 0 {
		fps = 30
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	screen.Animate(func(frame int) *canvas.Canvas {
		c, _ := demo.Render(scene, frame, pixelWidth)
		return c
	}, time.Second/time.Duration(fps))
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
