package main

import (
	"fmt"
	"os"
	"path/filepath"

	"lazyflex/pkg/demo"
	"lazyflex/pkg/visualtest"
)

const (
	width  = 640
	height = 360
	frames = 2
)

// Simple tool to generate reference images for visual regression tests
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Reference Image Generator for lazyflex")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/update-references <demo|all>")
		fmt.Println()
		fmt.Printf("Demos: %v\n", demo.Names())
		fmt.Println()
		fmt.Println("Or use the test-based approach:")
		fmt.Println("  UPDATE_REFS=1 go test -v ./cmd/lazyflex -run TestVisual")
		os.Exit(1)
	}

	names := []string{os.Args[1]}
	if os.Args[1] == "all" {
		names = demo.Names()
	}
	for _, name := range names {
		if err := generate(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("✓ %d reference image(s) generated successfully\n", len(names))
}

func generate(name string) error {
	scene, err := demo.Lookup(name)
	if err != nil {
		return err
	}
	path := filepath.Join("testdata", "reference", name+".png")
	fmt.Printf("Generating: %s\n", path)
	if err := visualtest.UpdateReferenceImage(scene, path, width, height, frames); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}
	return nil
}
