// Package host runs frames of a layout tree against a gg-backed paint
// surface. It owns the state that outlives a single frame: the keyed memory
// used by lazily sized leaves, and the rectangles of the controls that were
// last presented.
package host

import (
	"image"
	"log"
	"os"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/render"
	"lazyflex/pkg/style"
	"lazyflex/pkg/text"
)

// Options configures a Context.
type Options struct {
	Width  int
	Height int

	// MaxPasses caps how many times one frame is measured and drawn when
	// nodes keep requesting a discard. The last pass is presented as is.
	MaxPasses int

	Visuals style.Visuals
	Fonts   text.FontConfig
	// Shaper overrides Fonts when set.
	Shaper *text.Shaper

	Logger *log.Logger
	// Debug logs every pass, not only exhausted frames.
	Debug bool
}

func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		MaxPasses: 2,
		Visuals:   style.Dark(),
		Fonts:     text.DefaultFontConfig(),
		Logger:    log.New(os.Stderr, "lazyflex: ", log.LstdFlags),
	}
}

// Scene builds a fresh layout tree. It is called once per pass, since every
// tree is consumed by measuring and drawing it.
type Scene func() layout.Measurer

// Result describes one presented frame.
type Result struct {
	Frame     int
	Passes    int
	Discards  []string // reasons given by discard requests, in order
	Exhausted bool     // the last pass still requested a discard
	Size      layout.Size
	Image     *image.RGBA
}

type hit struct {
	rect    layout.Rect
	control layout.Control
}

// Context is the host a layout tree is measured and drawn against.
type Context struct {
	opts     Options
	logger   *log.Logger
	memory   *Memory
	shaper   *text.Shaper
	renderer *render.Renderer

	frame     int
	discards  []string
	hits      []hit
	presented []hit
}

func NewContext(opts Options) *Context {
	defaults := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = defaults.Width
	}
	if opts.Height <= 0 {
		opts.Height = defaults.Height
	}
	if opts.MaxPasses < 1 {
		opts.MaxPasses = defaults.MaxPasses
	}
	if opts.Visuals.Text == nil {
		opts.Visuals = defaults.Visuals
	}
	if opts.Logger == nil {
		opts.Logger = defaults.Logger
	}
	shaper := opts.Shaper
	if shaper == nil {
		shaper = text.NewShaper(opts.Fonts)
		shaper.Logger = opts.Logger
	}
	return &Context{
		opts:     opts,
		logger:   opts.Logger,
		memory:   NewMemory(),
		shaper:   shaper,
		renderer: render.NewRenderer(opts.Width, opts.Height),
	}
}

// Memory returns the store shared by every frame of this context.
func (c *Context) Memory() *Memory {
	return c.memory
}

// Renderer returns the paint surface frames are drawn onto.
func (c *Context) Renderer() *render.Renderer {
	return c.renderer
}

// Resize replaces the paint surface. Memory is kept.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.opts.Width, c.opts.Height = width, height
	c.renderer = render.NewRenderer(width, height)
	c.presented = nil
}

// Frame measures and draws the tree built by scene into the whole surface.
// When a node requests a discard, the output is cleared and the cycle runs
// again straight away, at most MaxPasses times in total.
func (c *Context) Frame(scene Scene) Result {
	c.frame++
	res := Result{Frame: c.frame}
	viewport := c.renderer.Bounds()

	for pass := 1; pass <= c.opts.MaxPasses; pass++ {
		c.discards = nil
		c.hits = nil
		c.renderer.Clear(c.opts.Visuals.Background)

		if root := scene(); root != nil {
			ui := c.ui(viewport)
			size, d := root.Measure(viewport.Size(), ui)
			res.Size = size
			if d != nil {
				d.Draw(viewport, ui)
			}
		}
		res.Passes = pass

		if len(c.discards) == 0 {
			break
		}
		res.Discards = append(res.Discards, c.discards...)
		if pass == c.opts.MaxPasses {
			res.Exhausted = true
			c.logger.Printf("frame %d: discard requested on final pass %d (%v), presenting it", c.frame, pass, c.discards)
		} else if c.opts.Debug {
			c.logger.Printf("frame %d: pass %d discarded (%v)", c.frame, pass, c.discards)
		}
	}

	c.presented = c.hits
	if c.opts.Debug {
		st := c.renderer.Stats()
		c.logger.Printf("frame %d: %d pass(es), %d fills, %d strokes, %d runs, %d images, %d clipped",
			c.frame, res.Passes, st.Fills, st.Strokes, st.Runs, st.Images, st.Clipped)
	}
	res.Image = c.renderer.Image()
	return res
}

// Click sends a tap at p to the top-most control presented there. It
// reports whether a Clickable control received it.
func (c *Context) Click(p layout.Position) bool {
	for i := len(c.presented) - 1; i >= 0; i-- {
		h := c.presented[i]
		if !h.rect.Contains(p) {
			continue
		}
		clickable, ok := h.control.(layout.Clickable)
		if !ok {
			return false
		}
		clickable.Click()
		return true
	}
	return false
}

func (c *Context) ui(region layout.Rect) *UI {
	return &UI{ctx: c, region: region, clip: region}
}
