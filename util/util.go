package util

import (
	"math"
	"math/rand"
)

// RandomRange returns a value in [min, max) drawn from rng.
func RandomRange(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// GenerateLut samples an easing curve at length evenly spaced points from
// 0 to 1 inclusive.
func GenerateLut(length int, curve func(float64) float64) []float64 {
	if length < 2 {
		return []float64{curve(1)}
	}
	increment := 1.0 / float64(length-1)
	lut := make([]float64, length)
	for i := range lut {
		lut[i] = curve(float64(i) * increment)
	}
	return lut
}

// Sample reads the entry nearest to t in [0, 1].
func Sample(lut []float64, t float64) float64 {
	i := int(math.Round(Clamp01(t) * float64(len(lut)-1)))
	return lut[i]
}
