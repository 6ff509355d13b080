package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Scene is the immutable set of animated objects and static decoration
// composed for one session.
type Scene struct {
	// Objects holds the knot first, then the bubbles in seed order.
	Objects     []Object   `json:"objects"`
	Knot        Appearance `json:"knot"`
	Bubble      Appearance `json:"bubble"`
	Stars       StarField  `json:"stars"`
	Lights      Lights     `json:"lights"`
	Environment string     `json:"environment"`
	Camera      Camera     `json:"camera"`
}

// Build composes a Scene from cfg. The result depends only on cfg.
func Build(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Colours were checked by Validate.
	knotColour, _ := colorful.Hex(cfg.KnotColor)
	bubbleColour, _ := colorful.Hex(cfg.BubbleColor)

	objects := make([]Object, 0, cfg.BubbleCount+1)
	objects = append(objects, NewKnot(cfg.KnotSpeed))
	for i := 0; i < cfg.BubbleCount; i++ {
		objects = append(objects, NewBubble(float64(i)*cfg.BubbleSeedSpacing))
	}

	s := &Scene{
		Objects: objects,
		Knot:    knotAppearance(knotColour),
		Bubble:  bubbleAppearance(bubbleColour, cfg.BubbleOpacity),
		Stars:   newStarField(cfg),
		Lights: Lights{
			Ambient: cfg.AmbientIntensity,
			Directional: DirectionalLight{
				Position:   mgl32.Vec3{6, 6, 4},
				Intensity:  cfg.DirectionalIntensity,
				CastShadow: true,
			},
		},
		Environment: cfg.Environment,
		Camera: Camera{
			FOV:        cfg.CameraFov,
			Distance:   cfg.CameraDistance,
			OrbitSpeed: cfg.OrbitSpeed,
		},
	}
	return s, nil
}

