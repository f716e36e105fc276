package script

import (
	"fmt"
	"strconv"

	"github.com/dop251/goja"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/style"
	"lazyflex/pkg/text"
	"lazyflex/pkg/widgets"
)

// nodeAccessor implements goja.DynamicObject for layout nodes handed to the
// script. The only visible property is kind.
type nodeAccessor struct {
	vm   *goja.Runtime
	kind string
	node layout.Measurer
	used bool
}

func (n *nodeAccessor) Get(key string) goja.Value {
	if key == "kind" {
		return n.vm.ToValue(n.kind)
	}
	return goja.Undefined()
}

func (n *nodeAccessor) Set(key string, val goja.Value) bool { return false }
func (n *nodeAccessor) Has(key string) bool                 { return key == "kind" }
func (n *nodeAccessor) Delete(key string) bool              { return false }
func (n *nodeAccessor) Keys() []string                      { return []string{"kind"} }

func (e *Engine) wrap(kind string, m layout.Measurer) goja.Value {
	n := &nodeAccessor{vm: e.vm, kind: kind, node: m}
	obj := e.vm.NewDynamicObject(n)
	if e.nodes == nil {
		e.nodes = make(map[*goja.Object]*nodeAccessor)
	}
	e.nodes[obj] = n
	return obj
}

// measurer converts a script value into a layout node. Strings become text
// leaves; null and undefined become nothing.
func (e *Engine) measurer(v goja.Value) (layout.Measurer, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	if obj, ok := v.(*goja.Object); ok {
		n, ok := e.nodes[obj]
		if !ok {
			return nil, fmt.Errorf("%s is not a layout node", v)
		}
		if n.used {
			return nil, fmt.Errorf("%s node used twice", n.kind)
		}
		n.used = true
		return n.node, nil
	}
	return widgets.NewText(v.String()), nil
}

// children converts an array of script values into layout nodes.
func (e *Engine) children(v goja.Value) ([]layout.Measurer, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	arr := v.ToObject(e.vm)
	if arr.ClassName() != "Array" {
		return nil, fmt.Errorf("children must be an array, got %s", v)
	}
	n := int(arr.Get("length").ToInteger())
	out := make([]layout.Measurer, 0, n)
	for i := 0; i < n; i++ {
		m, err := e.measurer(arr.Get(strconv.Itoa(i)))
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (e *Engine) object(v goja.Value) *goja.Object {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.ToObject(e.vm)
}

func option(o *goja.Object, key string) goja.Value {
	if o == nil {
		return nil
	}
	v := o.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v
}

func optString(o *goja.Object, key, def string) string {
	if v := option(o, key); v != nil {
		return v.String()
	}
	return def
}

func optFloat(o *goja.Object, key string, def float64) float64 {
	if v := option(o, key); v != nil {
		return v.ToFloat()
	}
	return def
}

func optBool(o *goja.Object, key string) bool {
	if v := option(o, key); v != nil {
		return v.ToBoolean()
	}
	return false
}

// params reads direction and alignments from a script options object.
func params(o *goja.Object, def layout.Params) (layout.Params, error) {
	p := def
	var err error
	if v := option(o, "direction"); v != nil {
		if p.Direction, err = layout.ParseDirection(v.String()); err != nil {
			return p, err
		}
	}
	if v := option(o, "main"); v != nil {
		if p.MainAxisAlignment, err = layout.ParseAlignment(v.String()); err != nil {
			return p, err
		}
	}
	if v := option(o, "cross"); v != nil {
		if p.CrossAxisAlignment, err = layout.ParseAlignment(v.String()); err != nil {
			return p, err
		}
	}
	return p, nil
}

// registerNodes installs the node constructors as globals.
func registerNodes(e *Engine) {
	vm := e.vm

	textNode := func(call goja.FunctionCall, heading bool) goja.Value {
		opts := e.object(call.Argument(1))
		t := widgets.NewRichText(text.Span{
			Text:   call.Argument(0).String(),
			Size:   optFloat(opts, "size", 0),
			Bold:   optBool(opts, "bold"),
			Italic: optBool(opts, "italic"),
			Mono:   optBool(opts, "mono"),
			NoWrap: optBool(opts, "nowrap"),
		})
		if heading || optBool(opts, "heading") {
			t.Heading()
		}
		return e.wrap("text", t)
	}
	vm.Set("text", func(call goja.FunctionCall) goja.Value {
		return textNode(call, false)
	})
	vm.Set("heading", func(call goja.FunctionCall) goja.Value {
		return textNode(call, true)
	})

	container := func(name string, call goja.FunctionCall, def layout.Params) goja.Value {
		optsArg, kids := call.Argument(0), call.Argument(1)
		if len(call.Arguments) < 2 {
			if o := e.object(optsArg); o != nil && o.ClassName() == "Array" {
				optsArg, kids = goja.Undefined(), optsArg
			}
		}
		p, err := params(e.object(optsArg), def)
		if err != nil {
			panic(vm.NewTypeError("%s: %v", name, err))
		}
		children, err := e.children(kids)
		if err != nil {
			panic(vm.NewTypeError("%s: %v", name, err))
		}
		l := layout.New(p)
		for _, c := range children {
			l.With(c)
		}
		return e.wrap(name, l)
	}
	vm.Set("row", func(call goja.FunctionCall) goja.Value {
		p := layout.DefaultParams()
		p.Direction = layout.Row
		return container("row", call, p)
	})
	vm.Set("column", func(call goja.FunctionCall) goja.Value {
		p := layout.DefaultParams()
		p.Direction = layout.Column
		return container("column", call, p)
	})
	vm.Set("layout", func(call goja.FunctionCall) goja.Value {
		return container("layout", call, layout.DefaultParams())
	})

	vm.Set("frame", func(call goja.FunctionCall) goja.Value {
		child, err := e.measurer(call.Argument(0))
		if err != nil {
			panic(vm.NewTypeError("frame: %v", err))
		}
		return e.wrap("frame", widgets.NewFrame(child))
	})

	vm.Set("button", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("button: label required"))
		}
		label := call.Argument(0).String()
		b := widgets.NewButton(label, nil)
		if v := call.Argument(1); !goja.IsUndefined(v) && !goja.IsNull(v) {
			fn, ok := goja.AssertFunction(v)
			if !ok {
				panic(vm.NewTypeError("button: onClick must be a function"))
			}
			b.OnClick = func() { e.call("onClick "+label, fn) }
		}
		opts := e.object(call.Argument(2))
		b.Disabled = optBool(opts, "disabled")
		id := layout.ID(optString(opts, "id", string(layout.ID("button").With(label))))
		return e.wrap("button", widgets.NewLazy(b, id))
	})

	vm.Set("input", func(call goja.FunctionCall) goja.Value {
		opts := e.object(call.Argument(1))
		in := &widgets.TextInput{
			Value: optString(opts, "value", ""),
			Hint:  optString(opts, "hint", ""),
			Width: optFloat(opts, "width", 0),
		}
		if v := call.Argument(0); !goja.IsUndefined(v) && !goja.IsNull(v) {
			in.Value = v.String()
		}
		id := layout.ID(optString(opts, "id", string(layout.ID("input").With(in.Hint))))
		return e.wrap("input", widgets.NewLazy(in, id))
	})

	vm.Set("image", func(call goja.FunctionCall) goja.Value {
		img, err := widgets.LoadImage(call.Argument(0).String())
		if err != nil {
			panic(vm.NewTypeError("image: %v", err))
		}
		if opts := e.object(call.Argument(1)); opts != nil {
			b := layout.Size{Width: optFloat(opts, "width", 0), Height: optFloat(opts, "height", 0)}
			if b.Width > 0 && b.Height > 0 {
				img.SetSize(b)
			}
		}
		return e.wrap("image", img)
	})

	vm.Set("swatch", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 3 {
			panic(vm.NewTypeError("swatch: width, height and color required"))
		}
		c, ok := style.ParseColor(call.Argument(2).String())
		if !ok {
			panic(vm.NewTypeError("swatch: invalid color %q", call.Argument(2).String()))
		}
		size := layout.Size{Width: call.Argument(0).ToFloat(), Height: call.Argument(1).ToFloat()}
		return e.wrap("swatch", widgets.NewSwatch(size, c))
	})
}
