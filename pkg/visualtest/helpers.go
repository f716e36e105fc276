// Package visualtest renders scenes to images and compares them.
package visualtest

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/font/basicfont"

	"lazyflex/pkg/host"
	"lazyflex/pkg/text"
)

// RenderFrames runs frames frames of scene on a fresh context and returns a
// copy of the last frame together with its result.
func RenderFrames(opts host.Options, scene host.Scene, frames int) (*image.RGBA, host.Result) {
	ctx := host.NewContext(opts)
	var res host.Result
	for i := 0; i < frames || i == 0; i++ {
		res = ctx.Frame(scene)
	}
	out := image.NewRGBA(res.Image.Bounds())
	copy(out.Pix, res.Image.Pix)
	return out, res
}

// RenderToFile renders scene and writes the last frame as a PNG.
func RenderToFile(opts host.Options, scene host.Scene, frames int, outputPath string) (host.Result, error) {
	img, res := RenderFrames(opts, scene, frames)

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return res, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := SavePNG(img, outputPath); err != nil {
		return res, fmt.Errorf("save error: %w", err)
	}
	return res, nil
}

// ReferenceOptions are the host options reference images are rendered
// with: dark visuals and basicfont metrics, so output does not depend on
// installed fonts.
func ReferenceOptions(width, height int) host.Options {
	opts := host.DefaultOptions()
	opts.Width, opts.Height = width, height
	opts.Shaper = text.Fixed(basicfont.Face7x13)
	opts.Logger = log.New(io.Discard, "", 0)
	return opts
}

// UpdateReferenceImage renders frames frames of scene with ReferenceOptions
// and stores the result at referencePath.
func UpdateReferenceImage(scene host.Scene, referencePath string, width, height, frames int) error {
	_, err := RenderToFile(ReferenceOptions(width, height), scene, frames, referencePath)
	return err
}
