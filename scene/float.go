package scene

import "math"

// Float describes the gentle wobble of the group an object's mesh hangs in.
type Float struct {
	Speed             float64 `json:"speed"`
	RotationIntensity float64 `json:"rotationIntensity"`
	FloatIntensity    float64 `json:"floatIntensity"`
	Offset            float64 `json:"offset"`
}

// At returns the group transform at elapsed time t.
func (f Float) At(t float64) Transform {
	ft := (t + f.Offset) * f.Speed / 4
	return Transform{
		Position: vec3(0, math.Sin(ft)/10*f.FloatIntensity, 0),
		Rotation: vec3(
			math.Cos(ft)/8*f.RotationIntensity,
			math.Sin(ft)/8*f.RotationIntensity,
			math.Sin(ft)/20*f.RotationIntensity,
		),
	}
}
