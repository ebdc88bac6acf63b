package viewer

import (
	"fmt"
	"image"
	"os"
	"runtime"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// SceneView is a fyne widget that shows a rasterised frame. Dragging
// rotates the camera and scrolling zooms.
type SceneView struct {
	widget.BaseWidget

	mu     sync.Mutex
	frame  Frame
	camera *Camera
	raster *canvas.Raster
}

// NewSceneView creates a widget for the frame
func NewSceneView(f Frame) *SceneView {
	v := &SceneView{
		frame:  f,
		camera: NewCamera(f.Bounds),
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// SetFrame replaces the displayed frame. The camera is kept so reloading a
// file does not reset the view.
func (v *SceneView) SetFrame(f Frame) {
	v.mu.Lock()
	v.frame = f
	v.mu.Unlock()
	v.Refresh()
}

func (v *SceneView) draw(width, height int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Rasterize(v.frame, v.camera, width, height)
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneViewRenderer{view: v}
}

// Dragged handles mouse drag events for rotation
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	v.mu.Lock()
	v.camera.Rotate(-float64(event.Dragged.DX)*0.01, float64(event.Dragged.DY)*0.01)
	v.mu.Unlock()
	v.raster.Refresh()
}

// DragEnd implements fyne.Draggable
func (v *SceneView) DragEnd() {}

// Scrolled handles scroll events for zooming
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	v.mu.Lock()
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.mu.Unlock()
	v.raster.Refresh()
}

// sceneViewRenderer implements fyne.WidgetRenderer
type sceneViewRenderer struct {
	view *SceneView
}

func (r *sceneViewRenderer) Layout(size fyne.Size) {
	r.view.raster.Resize(size)
}

func (r *sceneViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sceneViewRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *sceneViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.raster}
}

func (r *sceneViewRenderer) Destroy() {}

// WindowBackend opens a desktop window with a SceneView.
type WindowBackend struct {
	Width, Height int

	mu   sync.Mutex
	app  fyne.App
	view *SceneView
}

// Name implements Backend
func (b *WindowBackend) Name() string {
	return "window"
}

// Available reports ErrUnavailable on X11/Wayland systems without a display.
func (b *WindowBackend) Available() error {
	switch runtime.GOOS {
	case "darwin", "windows", "android", "ios":
		return nil
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: no DISPLAY or WAYLAND_DISPLAY set", ErrUnavailable)
	}
	return nil
}

// Show opens the window and blocks until it is closed
func (b *WindowBackend) Show(f Frame) error {
	a := app.New()
	w := a.NewWindow(f.Title)
	view := NewSceneView(f)

	b.mu.Lock()
	b.app, b.view = a, view
	b.mu.Unlock()

	w.SetContent(view)
	w.Resize(fyne.NewSize(float32(b.Width), float32(b.Height)))
	w.ShowAndRun()

	b.mu.Lock()
	b.app, b.view = nil, nil
	b.mu.Unlock()
	return nil
}

// Update swaps the frame of an open window. Safe to call from any goroutine.
func (b *WindowBackend) Update(f Frame) {
	b.mu.Lock()
	view := b.view
	b.mu.Unlock()

	if view != nil {
		fyne.Do(func() {
			view.SetFrame(f)
		})
	}
}

// Close quits the window if it is open
func (b *WindowBackend) Close() {
	b.mu.Lock()
	a := b.app
	b.mu.Unlock()

	if a != nil {
		fyne.Do(a.Quit)
	}
}
