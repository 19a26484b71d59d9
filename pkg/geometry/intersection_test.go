package geometry

import (
	"testing"

	"github.com/raylab/go-phong-raytracer/pkg/core"
)

func TestFindHit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectedT float64
		expectHit bool
	}{
		{
			name:      "all positive",
			ts:        []float64{2, 1},
			expectedT: 1,
			expectHit: true,
		},
		{
			name:      "some negative",
			ts:        []float64{1, -1},
			expectedT: 1,
			expectHit: true,
		},
		{
			name:      "all negative",
			ts:        []float64{-1, -2},
			expectHit: false,
		},
		{
			name:      "lowest non-negative wins",
			ts:        []float64{5, 7, -3, 2},
			expectedT: 2,
			expectHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs []Intersection
			for _, tv := range tt.ts {
				xs = append(xs, Intersection{T: tv, Object: s})
			}

			hit, found := FindHit(xs)
			if found != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, found)
			}
			if found && hit.T != tt.expectedT {
				t.Errorf("Expected hit at t=%v, got t=%v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSortIntersections(t *testing.T) {
	s := NewSphere()
	xs := []Intersection{
		{T: 5, Object: s},
		{T: -3, Object: s},
		{T: 2, Object: s},
	}
	SortIntersections(xs)

	for i, expected := range []float64{-3, 2, 5} {
		if xs[i].T != expected {
			t.Errorf("Expected xs[%d].T=%v, got %v", i, expected, xs[i].T)
		}
	}
}

func TestPrepare_Outside(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewSphere()
	hit, found := FindHit(s.Intersect(r))
	if !found {
		t.Fatal("Expected a hit")
	}

	prepared := Prepare(hit, r)
	if prepared.T != hit.T {
		t.Errorf("Expected t=%v, got %v", hit.T, prepared.T)
	}
	if !prepared.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0,0,-1), got %v", prepared.Point)
	}
	if !prepared.EyeVector.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eye (0,0,-1), got %v", prepared.EyeVector)
	}
	if !prepared.NormalVector.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", prepared.NormalVector)
	}
	if prepared.Inside {
		t.Error("Expected the hit to be outside the sphere")
	}
}

func TestPrepare_Inside(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	s := NewSphere()
	hit, found := FindHit(s.Intersect(r))
	if !found {
		t.Fatal("Expected a hit")
	}

	prepared := Prepare(hit, r)
	if !prepared.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Expected point (0,0,1), got %v", prepared.Point)
	}
	if !prepared.EyeVector.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eye (0,0,-1), got %v", prepared.EyeVector)
	}
	if !prepared.Inside {
		t.Error("Expected the hit to be inside the sphere")
	}
	// The normal would be (0,0,1) but is flipped toward the eye.
	if !prepared.NormalVector.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected flipped normal (0,0,-1), got %v", prepared.NormalVector)
	}
}

func TestPrepare_OverPointOffsetsTheSurface(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	s := NewSphere()
	s.Transform = core.Translation(0, 0, 1)

	prepared := Prepare(Intersection{T: 5, Object: s}, r)
	if prepared.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("Expected over point z < -epsilon/2, got %v", prepared.OverPoint.Z)
	}
	if prepared.Point.Z <= prepared.OverPoint.Z {
		t.Errorf("Expected over point above the surface, point z=%v over z=%v",
			prepared.Point.Z, prepared.OverPoint.Z)
	}
}
