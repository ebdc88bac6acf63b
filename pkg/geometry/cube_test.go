package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestCubeFromPointsUsesLargestSpan(t *testing.T) {
	cube, err := CubeAround(
		[]Vector3{NewVector3(0, 0, 0)},
		[]Vector3{NewVector3(2, 0, 0)},
		[]Vector3{NewVector3(0, 3, 0)},
		[]Vector3{NewVector3(0, 0, 1)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Range{Low: 0, High: 3}
	if cube.X != expected || cube.Y != expected || cube.Z != expected {
		t.Errorf("expected all axes %v, got %+v", expected, cube)
	}
}

func TestCubeAxesAreIndependent(t *testing.T) {
	cube, err := CubeFromPoints(
		[]float64{1, 5},
		[]float64{-10, -4},
		[]float64{100, 102},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cube.X != (Range{Low: 1, High: 7}) {
		t.Errorf("X failed: got %v", cube.X)
	}
	if cube.Y != (Range{Low: -10, High: -4}) {
		t.Errorf("Y failed: got %v", cube.Y)
	}
	if cube.Z != (Range{Low: 100, High: 106}) {
		t.Errorf("Z must start at min(z): got %v", cube.Z)
	}
	if math.Abs(cube.Extent()-6) > 1e-10 {
		t.Errorf("Extent failed: expected 6, got %v", cube.Extent())
	}
}

func TestCubeFromNoPoints(t *testing.T) {
	if _, err := CubeAround(); !errors.Is(err, ErrNoPoints) {
		t.Errorf("expected ErrNoPoints, got %v", err)
	}
	if _, err := CubeAround([]Vector3{}); !errors.Is(err, ErrNoPoints) {
		t.Errorf("expected ErrNoPoints for empty polygon, got %v", err)
	}
}

func TestCubeSinglePoint(t *testing.T) {
	cube, err := CubeAround([]Vector3{NewVector3(4, 5, 6)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cube.Extent() != 0 {
		t.Errorf("expected zero extent, got %v", cube.Extent())
	}
	if cube.Center() != NewVector3(4, 5, 6) {
		t.Errorf("Center failed: got %v", cube.Center())
	}
}
