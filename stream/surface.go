package stream

import (
	"errors"

	"github.com/matt-g-everett/herotx/scene"
)

// A Surface draws frames of a mounted scene.
type Surface interface {
	Mount(s *scene.Scene) error
	Draw(f *Frame) error
	Unmount() error
}

// Surfaces fans every call out to each surface in order and joins the errors.
type Surfaces []Surface

func (ss Surfaces) Mount(s *scene.Scene) error {
	var errs []error
	for _, surface := range ss {
		errs = append(errs, surface.Mount(s))
	}
	return errors.Join(errs...)
}

func (ss Surfaces) Draw(f *Frame) error {
	var errs []error
	for _, surface := range ss {
		errs = append(errs, surface.Draw(f))
	}
	return errors.Join(errs...)
}

func (ss Surfaces) Unmount() error {
	var errs []error
	for _, surface := range ss {
		errs = append(errs, surface.Unmount())
	}
	return errors.Join(errs...)
}
