package stream

import (
	"fmt"

	"github.com/matt-g-everett/herotx/scene"
)

// UpdateFault is a failed pose computation for one object in one frame. The
// object is left undrawn for that frame and the loop carries on.
type UpdateFault struct {
	Index   int
	Variant scene.Variant
	Err     error
}

func (e *UpdateFault) Error() string {
	return fmt.Sprintf("update %v #%d: %v", e.Variant, e.Index, e.Err)
}

func (e *UpdateFault) Unwrap() error {
	return e.Err
}
