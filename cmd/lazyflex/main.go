package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"lazyflex/pkg/demo"
	"lazyflex/pkg/host"
	"lazyflex/pkg/layout"
	"lazyflex/pkg/script"
	"lazyflex/pkg/style"
	"lazyflex/pkg/visualtest"
)

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	output := flag.String("o", "output.png", "output PNG file path")
	scriptPath := flag.String("script", "", "JavaScript scene file or URL")
	demoName := flag.String("demo", "simple", "built-in scene to render when no script is given")
	frames := flag.Int("frames", 1, "number of frames to run before saving")
	theme := flag.String("theme", "dark", "visuals: dark or light")
	passes := flag.Int("passes", 2, "maximum passes per frame")
	verbose := flag.Bool("v", false, "log every pass")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lazyflex [flags]\n\nDemos: %v\n\nFlags:\n", demo.Names())
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "lazyflex: ", 0)
	if !*verbose {
		layout.SetLogger(log.New(io.Discard, "", 0))
	}

	visuals, err := style.Lookup(*theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scene, err := loadScene(*scriptPath, *demoName, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := host.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	opts.MaxPasses = *passes
	opts.Visuals = visuals
	opts.Logger = logger
	opts.Debug = *verbose

	res, err := visualtest.RenderToFile(opts, scene, *frames, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d frame(s) to %s\n", res.Frame, *output)
	fmt.Printf("Viewport: %dx%d, last frame: %d pass(es), size %.0fx%.0f\n",
		*width, *height, res.Passes, res.Size.Width, res.Size.Height)
	if res.Exhausted {
		fmt.Printf("Warning: discard still requested on the last pass %v\n", res.Discards)
	}
}

func loadScene(scriptPath, demoName string, logger *log.Logger) (host.Scene, error) {
	if scriptPath == "" {
		return demo.Lookup(demoName)
	}
	engine := script.New(logger)
	if err := engine.LoadFile(scriptPath); err != nil {
		return nil, err
	}
	return engine.SceneFunc(), nil
}
