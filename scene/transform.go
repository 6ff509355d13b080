package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the position and XYZ euler rotation (radians) of a renderable.
type Transform struct {
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Vec3 `json:"rotation"`
}

// Pose is an object's transform for one frame: the mesh and the floating
// group it is parented to.
type Pose struct {
	Mesh  Transform `json:"mesh"`
	Group Transform `json:"group"`
}

func vec3(x, y, z float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (t Transform) finite() bool {
	return finite(t.Position) && finite(t.Rotation)
}

func (p Pose) finite() bool {
	return p.Mesh.finite() && p.Group.finite()
}
