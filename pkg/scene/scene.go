// Package scene provides the built-in example scenes.
package scene

import (
	"fmt"
	"math"

	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/geometry"
	"github.com/raylab/go-phong-raytracer/pkg/lights"
	"github.com/raylab/go-phong-raytracer/pkg/renderer"
	"github.com/raylab/go-phong-raytracer/pkg/world"
)

// Scene bundles a world with the camera that frames it.
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// NewScene creates a built-in scene by name at the given image size.
func NewScene(name string, width, height int) (*Scene, error) {
	switch name {
	case "spheres":
		return NewSphereRoomScene(width, height), nil
	case "sphere":
		return NewSingleSphereScene(width, height), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// NewSphereRoomScene builds a room of flattened spheres for floor and
// walls with three colored spheres inside it.
func NewSphereRoomScene(width, height int) *Scene {
	floor := geometry.NewSphere()
	floor.Transform = core.Scaling(10, 0.01, 10)
	floor.Material.Color = core.NewColor(0.9, 0.9, 0.9)
	floor.Material.Specular = 0

	leftWall := geometry.NewSphere()
	leftWall.Transform = core.Translation(0, 0, 5).
		Multiply(core.RotationY(-math.Pi / 4)).
		Multiply(core.RotationX(math.Pi / 2)).
		Multiply(core.Scaling(10, 0.01, 10))
	leftWall.Material = floor.Material

	rightWall := geometry.NewSphere()
	rightWall.Transform = core.Translation(0, 0, 5).
		Multiply(core.RotationY(math.Pi / 4)).
		Multiply(core.RotationX(math.Pi / 2)).
		Multiply(core.Scaling(10, 0.01, 10))
	rightWall.Material = floor.Material

	middle := geometry.NewSphere()
	middle.Transform = core.Translation(-0.5, 1, 0.5)
	middle.Material.Color = core.NewColor(0, 1, 0)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3

	right := geometry.NewSphere()
	right.Transform = core.Translation(1.5, 0.5, -0.5).
		Multiply(core.Scaling(0.5, 0.5, 0.5))
	right.Material.Color = core.NewColor(0, 0, 1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3

	left := geometry.NewSphere()
	left.Transform = core.Translation(-1.5, 0.33, -0.75).
		Multiply(core.Scaling(0.33, 0.33, 0.33))
	left.Material.Color = core.NewColor(1, 0, 0)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())

	w := world.NewWorld()
	w.Light = &light
	w.Objects = []geometry.Shape{floor, leftWall, rightWall, middle, right, left}

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.Transform = core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}
}

// NewSingleSphereScene builds a lone magenta sphere lit from the upper
// left, viewed head-on.
func NewSingleSphereScene(width, height int) *Scene {
	sphere := geometry.NewSphere()
	sphere.Material.Color = core.NewColor(1, 0, 1)

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())

	w := world.NewWorld()
	w.Light = &light
	w.Objects = []geometry.Shape{sphere}

	camera := renderer.NewCamera(width, height, math.Pi/4)
	camera.Transform = core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}
}
