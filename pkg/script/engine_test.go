package script

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"log"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"lazyflex/pkg/host"
	"lazyflex/pkg/layout"
	"lazyflex/pkg/style"
	"lazyflex/pkg/text"
)

func init() {
	layout.SetLogger(log.New(io.Discard, "", 0))
}

func newEngine(t *testing.T, src string) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	e := New(log.New(&buf, "", 0))
	if err := e.Load(src); err != nil {
		t.Fatal(err)
	}
	return e, &buf
}

func newContext() *host.Context {
	return host.NewContext(host.Options{
		Width:     200,
		Height:    100,
		MaxPasses: 2,
		Visuals:   style.Dark(),
		Shaper:    text.Fixed(basicfont.Face7x13),
		Logger:    log.New(io.Discard, "", 0),
	})
}

func TestLoad_RequiresSceneFunction(t *testing.T) {
	e := New(log.New(io.Discard, "", 0))
	if err := e.Load(`var scene = 3;`); err == nil {
		t.Error("expected an error for a script without scene()")
	}
	if err := e.Load(`function scene( {`); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestScene_NotLoaded(t *testing.T) {
	if _, err := New(log.New(io.Discard, "", 0)).Scene(); err == nil {
		t.Error("expected an error before Load")
	}
}

func TestScene_BuildsTree(t *testing.T) {
	e, _ := newEngine(t, `
		function scene() {
			return row({main: "start", cross: "start"}, [
				text("hi"),
				swatch(10, 10, "#ff0000"),
				"plain",
			]);
		}
	`)
	root, err := e.Scene()
	if err != nil {
		t.Fatal(err)
	}
	l, ok := root.(*layout.Layout)
	if !ok {
		t.Fatalf("root is %T, want *layout.Layout", root)
	}
	if l.Len() != 3 {
		t.Errorf("children = %d, want 3", l.Len())
	}
	p := l.Params()
	if p.Direction != layout.Row || p.MainAxisAlignment != layout.Start || p.CrossAxisAlignment != layout.Start {
		t.Errorf("params = %+v", p)
	}
}

func TestScene_ContainerDefaults(t *testing.T) {
	e, _ := newEngine(t, `
		function scene() {
			return layout({direction: "column", cross: "end"}, [column([text("a")])]);
		}
	`)
	root, err := e.Scene()
	if err != nil {
		t.Fatal(err)
	}
	p := root.(*layout.Layout).Params()
	want := layout.Params{Direction: layout.Column, MainAxisAlignment: layout.Center, CrossAxisAlignment: layout.End}
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad alignment", `return row({main: "sideways"}, []);`, "unknown alignment"},
		{"not a node", `return row([{}]);`, "not a layout node"},
		{"reused node", `var t = text("x"); return row([t, t]);`, "used twice"},
		{"bad color", `return swatch(1, 1, "nope");`, "invalid color"},
		{"thrown", `throw new Error("boom");`, "boom"},
		{"bad onClick", `return button("b", 3);`, "onClick must be a function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(t, "function scene() {"+tt.body+"}")
			_, err := e.Scene()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestScene_NodeKind(t *testing.T) {
	e, _ := newEngine(t, `
		function scene() {
			var f = frame(text("x"));
			if (f.kind !== "frame") throw new Error("kind = " + f.kind);
			return f;
		}
	`)
	if _, err := e.Scene(); err != nil {
		t.Fatal(err)
	}
}

func TestSceneFunc_ButtonCallbacks(t *testing.T) {
	e, logs := newEngine(t, `
		var count = 0;
		function scene() {
			console.log("count", count);
			return row({main: "start", cross: "start"}, [
				button("add", function() { count++; }, {id: "add"}),
			]);
		}
	`)
	ctx := newContext()
	scene := e.SceneFunc()

	res := ctx.Frame(scene)
	if res.Passes != 2 {
		t.Fatalf("passes = %d, want 2", res.Passes)
	}
	if !ctx.Click(layout.Position{X: 3, Y: 3}) {
		t.Fatal("button did not receive the click")
	}
	ctx.Frame(scene)

	if !strings.Contains(logs.String(), "count 1") {
		t.Errorf("console output %q should show the incremented count", logs.String())
	}
	v, err := e.vm.RunString("count")
	if err != nil || v.ToInteger() != 1 {
		t.Errorf("count = %v, %v; want 1", v, err)
	}
}

func TestSceneFunc_ThrowingCallbackIsLogged(t *testing.T) {
	e, logs := newEngine(t, `
		function scene() {
			return row({main: "start", cross: "start"}, [
				button("bad", function() { throw new Error("click failed"); }),
			]);
		}
	`)
	ctx := newContext()
	ctx.Frame(e.SceneFunc())
	ctx.Click(layout.Position{X: 3, Y: 3})
	if !strings.Contains(logs.String(), "click failed") {
		t.Errorf("logs = %q, want the thrown error", logs.String())
	}
}

func TestSceneFunc_ErrorDrawsNothing(t *testing.T) {
	e, logs := newEngine(t, `function scene() { return row({direction: "diagonal"}, []); }`)
	res := newContext().Frame(e.SceneFunc())
	if res.Size != (layout.Size{}) {
		t.Errorf("size = %+v, want zero", res.Size)
	}
	if !strings.Contains(logs.String(), "unknown direction") {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestInput(t *testing.T) {
	e, _ := newEngine(t, `
		function scene() {
			return column({main: "start", cross: "start"}, [input("", {hint: "address", width: 120, id: "addr"})]);
		}
	`)
	ctx := newContext()
	ctx.Frame(e.SceneFunc())
	v, ok := ctx.Memory().Get("addr")
	if !ok || v == nil {
		t.Fatal("input size was not cached under its id")
	}
	if ctx.Click(layout.Position{X: 3, Y: 3}) {
		t.Error("inputs are not clickable")
	}
}

func pixelURI(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestScene_Image(t *testing.T) {
	e, _ := newEngine(t, `
		function scene() {
			return column([image(pixel, {width: 8, height: 4}), image(pixel)]);
		}
	`)
	if err := e.Set("pixel", pixelURI(t)); err != nil {
		t.Fatal(err)
	}
	root, err := e.Scene()
	if err != nil {
		t.Fatal(err)
	}
	size, _ := root.Measure(layout.Size{Width: 100, Height: 100}, nil)
	if size != (layout.Size{Width: 8, Height: 5}) {
		t.Errorf("size = %+v, want 8x5", size)
	}

	e, _ = newEngine(t, `function scene() { return image("/no/such/file.png"); }`)
	if _, err := e.Scene(); err == nil {
		t.Error("expected an error for a missing image")
	}
}
