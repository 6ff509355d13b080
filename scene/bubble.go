package scene

import "math"

// Default bubble layout. Bubble i gets seed i*DefaultBubbleSeedSpacing.
const (
	DefaultBubbleCount       = 8
	DefaultBubbleSeedSpacing = 1.23
)

// NewBubble creates a bubble whose path is phase shifted by seed.
func NewBubble(seed float64) Object {
	return Object{
		Variant: Bubble,
		Seed:    seed,
		Float: Float{
			Speed:             1,
			RotationIntensity: 1,
			FloatIntensity:    1,
			Offset:            seed,
		},
	}
}

// bubbleTransform moves each axis at its own frequency, so the path stays in
// the box x∈[-3,3], y∈[-1,1.4], z∈[-2,2] without visibly repeating.
func bubbleTransform(o Object, t float64) Transform {
	t += o.Seed
	return Transform{
		Position: vec3(
			math.Sin(t*0.6)*3,
			math.Cos(t*0.4)*1.2+0.2,
			math.Cos(t*0.3)*2,
		),
	}
}
