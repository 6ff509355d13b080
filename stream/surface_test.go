package stream

import (
	"errors"
	"sync"
	"testing"

	"github.com/matt-g-everett/herotx/scene"
)

// recorder is a Surface that keeps everything it is given.
type recorder struct {
	mu       sync.Mutex
	scene    *scene.Scene
	frames   []*Frame
	mounts   int
	unmounts int
	mountErr error
	drawErr  error
	drawn    chan *Frame
}

func newRecorder() *recorder {
	return &recorder{drawn: make(chan *Frame, 64)}
}

func (r *recorder) Mount(s *scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mountErr != nil {
		return r.mountErr
	}
	r.scene = s
	r.mounts++
	return nil
}

func (r *recorder) Draw(f *Frame) error {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	err := r.drawErr
	r.mu.Unlock()

	select {
	case r.drawn <- f:
	default:
	}
	return err
}

func (r *recorder) Unmount() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmounts++
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func TestSurfacesFanOut(t *testing.T) {
	a, b := newRecorder(), newRecorder()
	b.drawErr = errors.New("b is broken")
	ss := Surfaces{a, b}

	sc, err := scene.Build(scene.DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := ss.Mount(sc); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	if a.scene != sc || b.scene != sc {
		t.Error("Expected both surfaces to receive the scene")
	}

	err = ss.Draw(NewFrame(1))
	if err == nil || !errors.Is(err, b.drawErr) {
		t.Errorf("Expected joined draw error, got %v", err)
	}
	if a.count() != 1 || b.count() != 1 {
		t.Errorf("Expected a draw on every surface despite errors, got %d and %d", a.count(), b.count())
	}

	if err := ss.Unmount(); err != nil {
		t.Fatalf("Unmount failed: %v", err)
	}
	if a.unmounts != 1 || b.unmounts != 1 {
		t.Errorf("Expected both surfaces unmounted, got %d and %d", a.unmounts, b.unmounts)
	}
}
