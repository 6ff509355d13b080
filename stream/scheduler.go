package stream

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/fogleman/ease"
	"github.com/jonboulle/clockwork"
	"github.com/matt-g-everett/herotx/scene"
	"github.com/matt-g-everett/herotx/util"
)

// ErrNotMounted is returned by Step when the scene is not mounted.
var ErrNotMounted = errors.New("scene not mounted")

// State is the Scheduler lifecycle state.
type State int32

const (
	// Idle is the state before mount and after unmount.
	Idle State = iota
	// Running means frames are being scheduled.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Scheduler advances the Clock and updates every object once per frame,
// then hands the frame to its Surface.
type Scheduler struct {
	scene   *scene.Scene
	surface Surface
	config  Config
	clock   clockwork.Clock
	elapsed *Clock
	update  func(o scene.Object, t float64) (scene.Pose, error)

	mu    sync.Mutex
	state State
	stop  chan struct{}
	done  chan struct{}
	last  *Frame

	// pass serialises frame passes.
	pass   sync.Mutex
	frames atomic.Uint64
}

// NewScheduler creates an idle Scheduler for sc drawing to surface.
func NewScheduler(sc *scene.Scene, surface Surface, config Config, clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	s := new(Scheduler)
	s.scene = sc
	s.surface = surface
	s.config = config
	s.clock = clock
	s.elapsed = NewClock(clock)
	s.update = scene.Object.Update
	s.state = Idle
	return s
}

// State returns the lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Frames returns the number of frame passes run since mount, whether or not
// the surface drew them.
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// Last returns the most recent frame, or nil before the first one.
func (s *Scheduler) Last() *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Mount starts the session: the surface is mounted, the clock reset and,
// unless the host paces frames, the frame loop started.
func (s *Scheduler) Mount() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		return errors.New("scheduler already running")
	}
	if err := s.surface.Mount(s.scene); err != nil {
		// Roll back whatever part of the surface did mount.
		if uerr := s.surface.Unmount(); uerr != nil {
			log.Printf("Unmount after failed mount: %v", uerr)
		}
		return fmt.Errorf("mount surface: %w", err)
	}

	s.elapsed.Mount()
	s.frames.Store(0)
	s.last = nil
	s.state = Running
	s.done = nil

	if interval := s.config.FrameInterval(); interval > 0 {
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		go s.run(s.clock.NewTicker(interval), s.stop, s.done)
	}

	log.Printf("Mounted scene with %d objects", len(s.scene.Objects))
	return nil
}

// Unmount stops the session. When it returns no frame pass is in progress
// and none will start. Unmounting an idle Scheduler does nothing.
func (s *Scheduler) Unmount() error {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return nil
	}
	s.state = Idle
	if s.stop != nil {
		close(s.stop)
	}
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
	// Wait out a host-driven pass that began before the state changed.
	s.pass.Lock()
	s.pass.Unlock()

	log.Printf("Unmounted scene after %d frames", s.Frames())
	if err := s.surface.Unmount(); err != nil {
		return fmt.Errorf("unmount surface: %w", err)
	}
	return nil
}

// Step runs one frame pass. The frame loop calls it on every tick; a host
// pacing its own frames calls it once per display refresh.
func (s *Scheduler) Step() error {
	s.pass.Lock()
	defer s.pass.Unlock()

	if s.State() != Running {
		return ErrNotMounted
	}
	s.step()
	return nil
}

func (s *Scheduler) run(ticker clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			// A stop racing with a tick wins.
			select {
			case <-stop:
				return
			default:
			}
			s.Step()
		}
	}
}

func (s *Scheduler) step() {
	t := s.elapsed.Tick()
	n := s.frames.Add(1)
	prev := s.Last()

	f := NewFrame(len(s.scene.Objects))
	f.Number = n
	f.Elapsed = t
	f.Fade = s.fade(t)
	f.Camera = s.scene.Camera.At(t)

	for i, o := range s.scene.Objects {
		f.Objects[i].Variant = o.Variant
		pose, err := s.updateObject(i, o, t)
		if err != nil {
			log.Printf("Frame %d: %v", n, err)
			if prev != nil {
				f.Objects[i].Pose = prev.Objects[i].Pose
			}
			continue
		}
		f.Objects[i].Pose = pose
		f.Objects[i].Drawn = true
	}

	s.mu.Lock()
	s.last = f
	s.mu.Unlock()

	if err := s.surface.Draw(f); err != nil {
		log.Printf("Frame %d: draw: %v", n, err)
	}
}

func (s *Scheduler) updateObject(i int, o scene.Object, t float64) (pose scene.Pose, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &UpdateFault{Index: i, Variant: o.Variant, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	pose, err = s.update(o, t)
	if err != nil {
		return scene.Pose{}, &UpdateFault{Index: i, Variant: o.Variant, Err: err}
	}
	return pose, nil
}

// fade eases the scene in over the configured time after mount.
func (s *Scheduler) fade(t float64) float32 {
	if s.config.FadeIn <= 0 {
		return 1
	}
	return float32(ease.InOutQuad(util.Clamp01(t / s.config.FadeIn)))
}
