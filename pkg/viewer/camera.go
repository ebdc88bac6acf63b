package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/idfview/pkg/geometry"
)

// Camera orbits a target point with Z up.
type Camera struct {
	Target   geometry.Vector3
	Distance float64
	Yaw      float64 // Rotation around Z, radians
	Pitch    float64 // Elevation above the XY plane, radians
	FOV      float64 // Vertical field of view, radians
}

// NewCamera creates a camera that shows the whole cube from the front right,
// slightly above.
func NewCamera(bounds geometry.Cube) *Camera {
	extent := bounds.Extent()
	if extent == 0 {
		extent = 1
	}

	return &Camera{
		Target:   bounds.Center(),
		Distance: extent * 2.5,
		Yaw:      -math.Pi / 3,
		Pitch:    math.Pi / 6,
		FOV:      math.Pi / 4,
	}
}

// Position returns the eye position.
func (c *Camera) Position() geometry.Vector3 {
	offset := geometry.NewVector3(
		math.Cos(c.Pitch)*math.Cos(c.Yaw),
		math.Cos(c.Pitch)*math.Sin(c.Yaw),
		math.Sin(c.Pitch),
	)
	return c.Target.Add(offset.Scale(c.Distance))
}

// Forward returns the unit view direction.
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position()).Normalize()
}

// Rotate changes yaw and pitch by the given angles
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	// Clamp pitch so the up vector never lines up with the view direction
	maxAngle := math.Pi/2 - 0.1
	c.Pitch = math.Max(-maxAngle, math.Min(maxAngle, c.Pitch))
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
}

// Projector maps world points to pixels for one image size.
type Projector struct {
	mvp           mgl64.Mat4
	width, height float64
}

// Projector builds the view-projection transform for a width x height image.
func (c *Camera) Projector(width, height int) Projector {
	w, h := float64(width), float64(height)
	view := mgl64.LookAtV(vec(c.Position()), vec(c.Target), mgl64.Vec3{0, 0, 1})
	proj := mgl64.Perspective(c.FOV, w/h, c.Distance*0.01, c.Distance*10)
	return Projector{mvp: proj.Mul4(view), width: w, height: h}
}

// Project returns screen coordinates and the depth along the view direction.
func (p Projector) Project(point geometry.Vector3) (float64, float64, float64) {
	clip := p.mvp.Mul4x1(vec(point).Vec4(1))

	depth := clip.W()
	if depth <= 0.01 {
		depth = 0.01 // Prevent division by zero
	}

	ndcX := clip.X() / depth
	ndcY := clip.Y() / depth

	screenX := (ndcX + 1) / 2 * p.width
	screenY := (1 - ndcY) / 2 * p.height
	return screenX, screenY, clip.W()
}

func vec(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
