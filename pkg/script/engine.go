// Package script builds layout scenes from JavaScript.
//
// A script defines a global scene() function returning a tree built from the
// node constructors text, heading, row, column, layout, frame, button, input,
// image and swatch. The function is called once per pass, so every pass gets a
// fresh tree.
package script

import (
	"fmt"
	"log"
	"os"

	"github.com/dop251/goja"

	"lazyflex/pkg/host"
	"lazyflex/pkg/layout"
	"lazyflex/pkg/resource"
)

// Engine evaluates a scene script.
type Engine struct {
	vm     *goja.Runtime
	logger *log.Logger
	scene  goja.Callable

	// nodes maps the script objects built during one scene call to the
	// layout nodes they stand for.
	nodes map[*goja.Object]*nodeAccessor
}

// New creates an engine with a fresh goja runtime. A nil logger writes to
// stderr.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(os.Stderr, "script: ", log.LstdFlags)
	}
	vm := goja.New()
	e := &Engine{vm: vm, logger: logger}

	c := &consoleAPI{logger: logger}
	c.register(vm)
	registerNodes(e)

	return e
}

// Load runs src and looks up its scene function.
func (e *Engine) Load(src string) error {
	if _, err := e.vm.RunString(src); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	fn, ok := goja.AssertFunction(e.vm.Get("scene"))
	if !ok {
		return fmt.Errorf("load: script does not define a scene() function")
	}
	e.scene = fn
	return nil
}

// LoadFile loads a script from a file path or an HTTP URL.
func (e *Engine) LoadFile(uri string) error {
	src, err := resource.NewFetcher("").FetchScript(uri)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if err := e.Load(src); err != nil {
		return fmt.Errorf("%s: %w", uri, err)
	}
	return nil
}

// Scene calls the script's scene function and converts what it returns.
func (e *Engine) Scene() (layout.Measurer, error) {
	if e.scene == nil {
		return nil, fmt.Errorf("scene: no script loaded")
	}
	e.nodes = make(map[*goja.Object]*nodeAccessor)
	defer func() { e.nodes = nil }()
	v, err := e.scene(goja.Undefined())
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	m, err := e.measurer(v)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return m, nil
}

// SceneFunc adapts the engine to a host scene. Script errors are logged and
// the pass is drawn empty.
func (e *Engine) SceneFunc() host.Scene {
	return func() layout.Measurer {
		m, err := e.Scene()
		if err != nil {
			e.logger.Printf("%v", err)
			return nil
		}
		return m
	}
}

// Set exposes a Go value to the script as a global.
func (e *Engine) Set(name string, value any) error {
	return e.vm.Set(name, value)
}

// call runs a script callback, logging any error it throws.
func (e *Engine) call(what string, fn goja.Callable) {
	if _, err := fn(goja.Undefined()); err != nil {
		e.logger.Printf("%s: %v", what, err)
	}
}
