package scene

import (
	"math"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/herotx/util"
)

// Environment presets a render surface knows how to light with.
var environments = map[string]bool{
	"apartment": true,
	"city":      true,
	"dawn":      true,
	"forest":    true,
	"lobby":     true,
	"night":     true,
	"park":      true,
	"studio":    true,
	"sunset":    true,
	"warehouse": true,
}

const fadeSteps = 64

// Star is one point of the background star field.
type Star struct {
	Position mgl32.Vec3     `json:"position"`
	Color    colorful.Color `json:"color"`
	Size     float32        `json:"size"`
}

// StarField is a shell of stars between Radius and Radius+Depth.
type StarField struct {
	Radius float64 `json:"radius"`
	Depth  float64 `json:"depth"`

	// Fade dims stars with depth in the shell. It is not drei's soft alpha
	// falloff at the sprite edge; renderers doing that can treat it as the
	// switch for it.
	Fade  bool   `json:"fade"`
	Stars []Star `json:"stars"`
}

// newStarField places stars from the outside of the shell inwards. The same
// config always yields the same field.
func newStarField(cfg Config) StarField {
	f := StarField{
		Radius: cfg.StarRadius,
		Depth:  cfg.StarDepth,
		Fade:   cfg.StarFade,
		Stars:  make([]Star, cfg.StarCount),
	}
	if cfg.StarCount == 0 {
		return f
	}

	rng := rand.New(rand.NewSource(cfg.StarSeed))
	fade := util.GenerateLut(fadeSteps, ease.InOutQuad)
	r := cfg.StarRadius + cfg.StarDepth
	increment := cfg.StarDepth / float64(cfg.StarCount)
	for i := range f.Stars {
		r -= increment * rng.Float64()
		theta := math.Acos(1 - rng.Float64()*2)
		phi := rng.Float64() * 2 * math.Pi

		c := colorful.Hsl(360*float64(i)/float64(cfg.StarCount), cfg.StarSaturation, 0.9)
		if cfg.StarFade && cfg.StarDepth > 0 {
			// Deeper stars are dimmer.
			b := 1 - util.Sample(fade, (r-cfg.StarRadius)/cfg.StarDepth)
			c = colorful.Color{R: c.R * b, G: c.G * b, B: c.B * b}
		}

		f.Stars[i] = Star{
			Position: vec3(
				r*math.Sin(theta)*math.Sin(phi),
				r*math.Cos(theta),
				r*math.Sin(theta)*math.Cos(phi),
			),
			Color: c,
			Size:  float32(util.RandomRange(rng, 0.5, 1) * cfg.StarFactor),
		}
	}
	return f
}

// DirectionalLight is a shadow casting light shining towards the origin.
type DirectionalLight struct {
	Position   mgl32.Vec3 `json:"position"`
	Intensity  float64    `json:"intensity"`
	CastShadow bool       `json:"castShadow"`
}

// Lights holds the scene's light rig.
type Lights struct {
	Ambient     float64          `json:"ambient"`
	Directional DirectionalLight `json:"directional"`
}

// Camera is a perspective camera orbiting the origin at a fixed distance.
// Zoom and pan are locked.
type Camera struct {
	FOV        float64    `json:"fov"`
	Distance   float64    `json:"distance"`
	OrbitSpeed float64    `json:"orbitSpeed"`
	Target     mgl32.Vec3 `json:"target"`
}

// OrbitRate returns the auto-orbit angular velocity in radians per second.
// An OrbitSpeed of 1 completes a turn every minute.
func (c Camera) OrbitRate() float64 {
	return 2 * math.Pi / 60 * c.OrbitSpeed
}

// At returns the eye position at elapsed time t.
func (c Camera) At(t float64) mgl32.Vec3 {
	eye := mgl32.Vec3{0, 0, float32(c.Distance)}
	return mgl32.Rotate3DY(float32(-t * c.OrbitRate())).Mul3x1(eye).Add(c.Target)
}

// Geometry names a primitive and its construction arguments.
type Geometry struct {
	Kind string    `json:"kind"`
	Args []float64 `json:"args"`
}

// Material is a physically based surface description.
type Material struct {
	Color       colorful.Color `json:"color"`
	Metalness   float64        `json:"metalness"`
	Roughness   float64        `json:"roughness"`
	Opacity     float64        `json:"opacity"`
	Transparent bool           `json:"transparent"`
}

// Appearance is how every object of one variant is drawn.
type Appearance struct {
	Geometry      Geometry `json:"geometry"`
	Material      Material `json:"material"`
	CastShadow    bool     `json:"castShadow"`
	ReceiveShadow bool     `json:"receiveShadow"`
}

func knotAppearance(color colorful.Color) Appearance {
	return Appearance{
		Geometry: Geometry{Kind: "torusKnot", Args: []float64{1, 0.3, 180, 16}},
		Material: Material{
			Color:     color,
			Metalness: 0.5,
			Roughness: 0.2,
			Opacity:   1,
		},
		CastShadow:    true,
		ReceiveShadow: true,
	}
}

func bubbleAppearance(color colorful.Color, opacity float64) Appearance {
	return Appearance{
		Geometry: Geometry{Kind: "icosahedron", Args: []float64{0.25, 1}},
		Material: Material{
			Color:       color,
			Metalness:   0.8,
			Roughness:   0.1,
			Opacity:     opacity,
			Transparent: opacity < 1,
		},
	}
}
