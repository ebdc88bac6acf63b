package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/idfview/pkg/geometry"
)

var (
	backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	cubeColor       = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	textColor       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// face projected to the screen, ready to draw
type face struct {
	xs, ys []float64
	depth  float64
	fill   color.RGBA
	edge   color.RGBA
	alpha  float64
}

// Rasterize draws a frame into a new image. Faces are drawn back to front so
// translucent fills blend in the right order.
func Rasterize(f Frame, cam *Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	proj := cam.Projector(width, height)
	forward := cam.Forward()

	limit := float64(4 * (width + height))
	drawCube(img, proj, f.Bounds, limit)

	var faces []face
	for _, c := range f.Collections {
		for _, poly := range c.Polygons {
			if len(poly) == 0 {
				continue
			}

			fc := face{
				xs:    make([]float64, len(poly)),
				ys:    make([]float64, len(poly)),
				edge:  c.Style.Edge,
				alpha: c.Style.Opacity,
			}
			for i, p := range poly {
				var d float64
				fc.xs[i], fc.ys[i], d = proj.Project(p)
				fc.depth += d
			}
			fc.depth /= float64(len(poly))

			// Faces seen edge-on are darker
			normal := geometry.NewPolygon(poly...).Normal()
			fc.fill = shade(c.Style.Fill, 0.6+0.4*math.Abs(normal.Dot(forward)))

			faces = append(faces, fc)
		}
	}

	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].depth > faces[j].depth
	})

	for _, fc := range faces {
		fillPolygon(img, fc.xs, fc.ys, fc.fill, fc.alpha)

		n := len(fc.xs)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if offscreen(fc.xs[i], fc.ys[i], limit) || offscreen(fc.xs[j], fc.ys[j], limit) {
				continue
			}
			drawLine(img, int(fc.xs[i]), int(fc.ys[i]), int(fc.xs[j]), int(fc.ys[j]), fc.edge)
		}
	}

	drawLegend(img, f)
	return img
}

// drawCube outlines the axis limits
func drawCube(img *image.RGBA, proj Projector, cube geometry.Cube, limit float64) {
	var corners [8][2]int
	var visible [8]bool
	for i := 0; i < 8; i++ {
		p := geometry.NewVector3(
			pick(cube.X, i&1),
			pick(cube.Y, i&2),
			pick(cube.Z, i&4),
		)
		x, y, _ := proj.Project(p)
		corners[i] = [2]int{int(x), int(y)}
		visible[i] = !offscreen(x, y, limit)
	}

	// Corners that differ in exactly one bit share an edge
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i && visible[i] && visible[j] {
				drawLine(img, corners[i][0], corners[i][1], corners[j][0], corners[j][1], cubeColor)
			}
		}
	}
}

func pick(r geometry.Range, bit int) float64 {
	if bit != 0 {
		return r.High
	}
	return r.Low
}

// drawLegend writes the title and one swatch per collection
func drawLegend(img *image.RGBA, f Frame) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}

	y := 18
	if f.Title != "" {
		d.Dot = fixed.P(10, y)
		d.DrawString(f.Title)
		y += 20
	}

	for _, c := range f.Collections {
		swatch := image.Rect(10, y-10, 22, y+2)
		draw.Draw(img, swatch, image.NewUniform(c.Style.Fill), image.Point{}, draw.Src)
		drawRect(img, swatch, c.Style.Edge)

		d.Dot = fixed.P(28, y)
		d.DrawString(fmt.Sprintf("%s (%d)", c.Name, c.Len()))
		y += 16
	}
}

func drawRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	drawLine(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, col)
	drawLine(img, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, col)
	drawLine(img, r.Max.X-1, r.Max.Y-1, r.Min.X, r.Max.Y-1, col)
	drawLine(img, r.Min.X, r.Max.Y-1, r.Min.X, r.Min.Y, col)
}

func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*factor))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func offscreen(x, y, limit float64) bool {
	return math.Abs(x) > limit || math.Abs(y) > limit || math.IsNaN(x) || math.IsNaN(y)
}
