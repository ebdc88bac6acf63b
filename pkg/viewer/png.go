package viewer

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// PNGBackend renders frames to a PNG file without any display.
type PNGBackend struct {
	Path          string
	Width, Height int
	// Camera overrides the default view when set
	Camera *Camera
}

// Name implements Backend
func (b *PNGBackend) Name() string {
	return "png"
}

// Available implements Backend; software rendering works everywhere.
func (b *PNGBackend) Available() error {
	return nil
}

// Show renders the frame and writes it to Path
func (b *PNGBackend) Show(f Frame) error {
	file, err := os.Create(b.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", b.Path, err)
	}

	if err := b.Encode(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Encode renders the frame as PNG to w
func (b *PNGBackend) Encode(w io.Writer, f Frame) error {
	cam := b.Camera
	if cam == nil {
		cam = NewCamera(f.Bounds)
	}

	img := Rasterize(f, cam, b.Width, b.Height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
