package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/matt-g-everett/herotx/scene"
)

const (
	frameHeaderSize = 2 + 8 + 8 + 4 + 3*4
	objectSize      = 2 + 12*4
)

// ObjectFrame is one object's state in a frame. Drawn is false when the
// object's update faulted and Pose holds its previous value.
type ObjectFrame struct {
	Variant scene.Variant `json:"variant"`
	Drawn   bool          `json:"drawn"`
	scene.Pose
}

// Frame represents everything a render surface needs to draw one frame on
// top of the mounted scene.
type Frame struct {
	Number  uint64        `json:"number"`
	Elapsed float64       `json:"elapsed"`
	Fade    float32       `json:"fade"`
	Camera  mgl32.Vec3    `json:"camera"`
	Objects []ObjectFrame `json:"objects"`
}

// NewFrame creates a new Frame instance for n objects.
func NewFrame(n int) *Frame {
	f := new(Frame)
	f.Objects = make([]ObjectFrame, n)
	return f
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	out := *f
	out.Objects = append([]ObjectFrame(nil), f.Objects...)
	return &out
}

func appendVec3(data []byte, v mgl32.Vec3) []byte {
	for _, c := range v {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(c))
	}
	return data
}

// MarshalBinary converts a Frame into little-endian binary data: object
// count, frame number, elapsed seconds, fade, camera eye, then per object its
// variant, drawn flag, mesh and group transforms.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.Objects) > math.MaxUint16 {
		return nil, fmt.Errorf("frame has %d objects, limit is %d", len(f.Objects), math.MaxUint16)
	}

	data = make([]byte, 0, frameHeaderSize+len(f.Objects)*objectSize)
	data = binary.LittleEndian.AppendUint16(data, uint16(len(f.Objects)))
	data = binary.LittleEndian.AppendUint64(data, f.Number)
	data = binary.LittleEndian.AppendUint64(data, math.Float64bits(f.Elapsed))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f.Fade))
	data = appendVec3(data, f.Camera)

	for _, o := range f.Objects {
		var drawn byte
		if o.Drawn {
			drawn = 1
		}
		data = append(data, byte(o.Variant), drawn)
		data = appendVec3(data, o.Mesh.Position)
		data = appendVec3(data, o.Mesh.Rotation)
		data = appendVec3(data, o.Group.Position)
		data = appendVec3(data, o.Group.Rotation)
	}

	return data, nil
}
