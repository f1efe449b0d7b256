package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/akmonengine/sierpinski/geometry"
)

const ambient = 0.4

// light shines along -(1,1,1); a second light of equal power shines the
// other way, so faces are lit by the absolute cosine
var light = mgl64.Vec3{1, 1, 1}.Normalize()

// Triangle is a flat-shaded face in screen pixels
type Triangle struct {
	Points [3]mgl64.Vec2
	Depth  float64 // NDC depth of the centroid, larger is further
	Color  colorful.Color
}

// Line is a screen-space segment
type Line struct {
	From  mgl64.Vec2
	To    mgl64.Vec2
	Color colorful.Color
}

// Scene is ready to rasterize: Triangles sorted far to near, Lines on top
type Scene struct {
	Triangles []Triangle
	Lines     []Line
}

// Assemble projects drawables through camera into a width×height viewport.
// Faces with a vertex behind the camera are skipped.
func Assemble(camera Camera, drawables []Drawable, width, height int) (Scene, error) {
	template := geometry.Template()
	viewProjection := camera.ViewProjection(width, height)
	model := camera.Model()

	var scene Scene
	for _, d := range drawables {
		switch d.Kind {
		case DrawableMesh:
			scene.Triangles = appendFaces(scene.Triangles, template, viewProjection, model, d.Transform, d.Color, width, height)

		case DrawableInstanced:
			if err := CheckLengths(d.Transforms, d.Colors); err != nil {
				return Scene{}, err
			}
			for i, t := range d.Transforms {
				scene.Triangles = appendFaces(scene.Triangles, template, viewProjection, model, t, d.Colors[i], width, height)
			}

		case DrawableAxes:
			origin, _, ok := project(viewProjection, mgl64.Vec3{}, width, height)
			if !ok {
				continue
			}
			for axis := 0; axis < 3; axis++ {
				var tip mgl64.Vec3
				tip[axis] = d.AxisLength
				end, _, ok := project(viewProjection, tip, width, height)
				if !ok {
					continue
				}
				scene.Lines = append(scene.Lines, Line{From: origin, To: end, Color: axisColors[axis]})
			}

		default:
			return Scene{}, fmt.Errorf("unknown drawable kind %v", d.Kind)
		}
	}

	sort.SliceStable(scene.Triangles, func(i, j int) bool {
		return scene.Triangles[i].Depth > scene.Triangles[j].Depth
	})

	return scene, nil
}

func appendFaces(out []Triangle, template geometry.Tetrahedron, viewProjection mgl64.Mat4, model mgl64.Quat,
	transform geometry.Transform, color colorful.Color, width, height int) []Triangle {
	var world [4]mgl64.Vec3
	for i, v := range template.WorldVertices(transform) {
		world[i] = model.Rotate(v)
	}

	var screen [4]mgl64.Vec2
	var depth [4]float64
	for i, v := range world {
		s, z, ok := project(viewProjection, v, width, height)
		if !ok {
			return out
		}
		screen[i], depth[i] = s, z
	}

	rotation := model.Mul(transform.Rotation)
	for i, face := range template.Faces {
		normal := rotation.Rotate(template.Normal(i))
		shade := ambient + (1-ambient)*math.Abs(normal.Dot(light))

		out = append(out, Triangle{
			Points: [3]mgl64.Vec2{screen[face[0]], screen[face[1]], screen[face[2]]},
			Depth:  (depth[face[0]] + depth[face[1]] + depth[face[2]]) / 3,
			Color:  colorful.Color{R: color.R * shade, G: color.G * shade, B: color.B * shade}.Clamped(),
		})
	}

	return out
}
