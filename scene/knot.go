package scene

import "math"

// DefaultKnotSpeed is the knot's base angular rate in radians per second.
const DefaultKnotSpeed = 0.4

// NewKnot creates a knot turning at speed. Zero or negative speeds are
// allowed and give a static or reversed tumble.
func NewKnot(speed float64) Object {
	return Object{
		Variant: Knot,
		Speed:   speed,
		Float: Float{
			Speed:             1.5,
			RotationIntensity: 0.5,
			FloatIntensity:    0.8,
		},
	}
}

// knotTransform tumbles on two coupled axes and bobs independently of speed.
func knotTransform(o Object, t float64) Transform {
	return Transform{
		Position: vec3(0, math.Sin(t*0.8)*0.3, 0),
		Rotation: vec3(t*o.Speed, t*o.Speed*1.2, 0),
	}
}
