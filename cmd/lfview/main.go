package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"lazyflex/pkg/demo"
	"lazyflex/pkg/host"
	"lazyflex/pkg/layout"
	"lazyflex/pkg/script"
	"lazyflex/pkg/style"
)

// view shows the frames of a host context and forwards taps to it.
type view struct {
	widget.BaseWidget

	ctx     *host.Context
	scene   host.Scene
	image   *canvas.Image
	onFrame func(host.Result)
}

func newView(ctx *host.Context, scene host.Scene, size fyne.Size) *view {
	v := &view{ctx: ctx, scene: scene}
	v.image = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	v.image.FillMode = canvas.ImageFillOriginal
	v.image.ScaleMode = canvas.ImageScalePixels
	v.image.SetMinSize(size)
	v.ExtendBaseWidget(v)
	return v
}

func (v *view) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// Tapped routes the tap to the control under it and redraws.
func (v *view) Tapped(e *fyne.PointEvent) {
	if v.ctx.Click(layout.Position{X: float64(e.Position.X), Y: float64(e.Position.Y)}) {
		v.render()
	}
}

func (v *view) setScene(scene host.Scene) {
	v.scene = scene
	v.ctx.Memory().Clear()
	v.render()
}

func (v *view) render() {
	res := v.ctx.Frame(v.scene)
	// The context reuses its surface for the next frame.
	img := image.NewRGBA(res.Image.Bounds())
	copy(img.Pix, res.Image.Pix)
	v.image.Image = img
	v.image.Refresh()
	if v.onFrame != nil {
		v.onFrame(res)
	}
}

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	scriptPath := flag.String("script", "", "JavaScript scene file or URL")
	demoName := flag.String("demo", "simple", "built-in scene to show when no script is given")
	theme := flag.String("theme", "dark", "visuals: dark or light")
	verbose := flag.Bool("v", false, "log every pass")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lfview [flags]\n\nDemos: %v\n\nFlags:\n", demo.Names())
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "lfview: ", log.LstdFlags)
	if !*verbose {
		layout.SetLogger(log.New(io.Discard, "", 0))
	}

	visuals, err := style.Lookup(*theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var scene host.Scene
	if *scriptPath != "" {
		engine := script.New(logger)
		if err := engine.LoadFile(*scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scene = engine.SceneFunc()
	} else if scene, err = demo.Lookup(*demoName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := host.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	opts.Visuals = visuals
	opts.Logger = logger
	opts.Debug = *verbose
	ctx := host.NewContext(opts)

	a := app.New()
	w := a.NewWindow("lazyflex")

	status := widget.NewLabel("")
	v := newView(ctx, scene, fyne.NewSize(float32(*width), float32(*height)))
	v.onFrame = func(res host.Result) {
		msg := fmt.Sprintf("frame %d: %d pass(es)", res.Frame, res.Passes)
		if res.Exhausted {
			msg += " (pass limit hit)"
		}
		status.SetText(msg)
	}

	demos := widget.NewSelect(demo.Names(), func(name string) {
		if next, err := demo.Lookup(name); err == nil {
			v.setScene(next)
			w.SetTitle("lazyflex: " + name)
		}
	})
	redraw := widget.NewButton("Redraw", v.render)
	topBar := container.NewHBox(demos, redraw)
	if *scriptPath != "" {
		demos.Disable()
		w.SetTitle("lazyflex: " + *scriptPath)
	}

	// Keep the view at its minimum size in the top left corner so tap
	// positions match frame coordinates.
	w.SetContent(container.NewBorder(topBar, status, nil, nil, container.NewVBox(container.NewHBox(v))))
	w.Resize(fyne.NewSize(float32(*width), float32(*height)+80))

	if *scriptPath == "" {
		// Selecting the demo renders its first frame.
		demos.SetSelected(*demoName)
	} else {
		v.render()
	}
	w.ShowAndRun()
}
