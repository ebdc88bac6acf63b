package viewer

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// fillPolygon fills a polygon on an image with a scanline even-odd fill,
// blending col over the existing pixels with the given alpha
func fillPolygon(img *image.RGBA, xs, ys []float64, col color.RGBA, alpha float64) {
	n := len(xs)
	if n < 3 {
		return
	}

	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	bounds := img.Bounds()
	startY := int(math.Max(float64(bounds.Min.Y), math.Floor(minY)))
	endY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(maxY)))

	intersections := make([]float64, 0, n)
	for y := startY; y <= endY; y++ {
		// Sample at the pixel center
		fy := float64(y) + 0.5

		intersections = intersections[:0]
		for i := 0; i < n; i++ {
			x1, y1 := xs[i], ys[i]
			x2, y2 := xs[(i+1)%n], ys[(i+1)%n]
			if y1 == y2 {
				continue
			}
			if (fy >= y1 && fy < y2) || (fy >= y2 && fy < y1) {
				t := (fy - y1) / (y2 - y1)
				intersections = append(intersections, x1+t*(x2-x1))
			}
		}
		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			// Clamp to image bounds
			xStart := int(math.Max(float64(bounds.Min.X), math.Round(intersections[i])))
			xEnd := int(math.Min(float64(bounds.Max.X-1), math.Round(intersections[i+1])-1))

			for x := xStart; x <= xEnd; x++ {
				img.SetRGBA(x, y, blend(img.RGBAAt(x, y), col, alpha))
			}
		}
	}
}

// blend mixes src over dst with the given alpha
func blend(dst, src color.RGBA, alpha float64) color.RGBA {
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*alpha + float64(d)*(1-alpha)))
	}
	return color.RGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 0xff,
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
