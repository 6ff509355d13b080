package scene

import (
	"errors"
	"fmt"
)

// Variant identifies the motion formula an Object follows.
type Variant uint8

const (
	// Knot is the tumbling torus knot at the centre of the scene.
	Knot Variant = iota
	// Bubble is a small icosahedron drifting on a Lissajous path.
	Bubble
)

var variantNames = map[Variant]string{
	Knot:   "knot",
	Bubble: "bubble",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// MarshalText encodes the variant by name.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// An updateFunc computes the mesh transform of one variant at elapsed time t.
type updateFunc func(o Object, t float64) Transform

var updates = map[Variant]updateFunc{
	Knot:   knotTransform,
	Bubble: bubbleTransform,
}

var errNonFinite = errors.New("non-finite transform")

// Object is an immutable animated object descriptor. Its Pose is a pure
// function of (Variant, Seed, Speed, Float, t).
type Object struct {
	Variant Variant `json:"variant"`
	Seed    float64 `json:"seed"`
	Speed   float64 `json:"speed"`
	Float   Float   `json:"float"`
}

// Update computes the object's pose at elapsed time t.
func (o Object) Update(t float64) (Pose, error) {
	fn, ok := updates[o.Variant]
	if !ok {
		return Pose{}, fmt.Errorf("no update for %v", o.Variant)
	}

	p := Pose{
		Mesh:  fn(o, t),
		Group: o.Float.At(t),
	}
	if !p.finite() {
		return Pose{}, errNonFinite
	}
	return p, nil
}
