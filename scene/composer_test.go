package scene

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	s, err := Build(DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(s.Objects) != 1+DefaultBubbleCount {
		t.Fatalf("Expected %d objects, got %d", 1+DefaultBubbleCount, len(s.Objects))
	}
	if s.Objects[0].Variant != Knot || s.Objects[0].Speed != DefaultKnotSpeed {
		t.Errorf("Expected knot first with speed %v, got %+v", DefaultKnotSpeed, s.Objects[0])
	}
	for i, o := range s.Objects[1:] {
		if o.Variant != Bubble {
			t.Errorf("Expected bubble at %d, got %v", i+1, o.Variant)
		}
		if want := float64(i) * 1.23; o.Seed != want {
			t.Errorf("Expected bubble %d seed %v, got %v", i, want, o.Seed)
		}
	}

	if len(s.Stars.Stars) != 1200 {
		t.Errorf("Expected 1200 stars, got %d", len(s.Stars.Stars))
	}
	if s.Lights.Ambient != 0.6 || s.Lights.Directional.Intensity != 1.1 {
		t.Errorf("Unexpected lights %+v", s.Lights)
	}
	if s.Environment != "city" {
		t.Errorf("Expected city environment, got %q", s.Environment)
	}
	if s.Camera.FOV != 55 || s.Camera.Distance != 5 || s.Camera.OrbitSpeed != 0.6 {
		t.Errorf("Unexpected camera %+v", s.Camera)
	}
	if got := s.Knot.Material.Color.Hex(); got != "#6ee7b7" {
		t.Errorf("Expected knot colour #6ee7b7, got %s", got)
	}
	if !s.Bubble.Material.Transparent || s.Bubble.Material.Opacity != 0.6 {
		t.Errorf("Expected translucent bubbles, got %+v", s.Bubble.Material)
	}
}

func TestBuildIsPure(t *testing.T) {
	a, err := Build(DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := Build(DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical scenes from identical configs")
	}
}

func TestBuildOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BubbleCount = 3
	cfg.BubbleSeedSpacing = 2
	cfg.KnotSpeed = 1
	cfg.StarCount = 0
	cfg.Environment = "night"

	s, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(s.Objects) != 4 {
		t.Fatalf("Expected 4 objects, got %d", len(s.Objects))
	}
	if s.Objects[3].Seed != 4 {
		t.Errorf("Expected last seed 4, got %v", s.Objects[3].Seed)
	}
	if s.Objects[0].Speed != 1 {
		t.Errorf("Expected knot speed 1, got %v", s.Objects[0].Speed)
	}
	if len(s.Stars.Stars) != 0 {
		t.Errorf("Expected empty star field, got %d stars", len(s.Stars.Stars))
	}

	cfg.BubbleCount = 0
	s, err = Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(s.Objects) != 1 {
		t.Errorf("Expected only the knot, got %d objects", len(s.Objects))
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Config)
	}{
		{"bubbleCount", func(c *Config) { c.BubbleCount = -1 }},
		{"starCount", func(c *Config) { c.StarCount = -5 }},
		{"starRadius", func(c *Config) { c.StarRadius = 0 }},
		{"starDepth", func(c *Config) { c.StarDepth = -1 }},
		{"starSaturation", func(c *Config) { c.StarSaturation = 1.5 }},
		{"bubbleOpacity", func(c *Config) { c.BubbleOpacity = -0.1 }},
		{"ambientIntensity", func(c *Config) { c.AmbientIntensity = -1 }},
		{"environment", func(c *Config) { c.Environment = "moon" }},
		{"cameraFov", func(c *Config) { c.CameraFov = 180 }},
		{"cameraDistance", func(c *Config) { c.CameraDistance = 0 }},
		{"knotColor", func(c *Config) { c.KnotColor = "green" }},
		{"bubbleColor", func(c *Config) { c.BubbleColor = "#zzzzzz" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			s, err := Build(cfg)
			if s != nil {
				t.Error("Expected no scene for invalid config")
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Expected *ConfigError, got %v", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, cerr.Field)
			}
		})
	}
}

func TestStarFieldWithinShell(t *testing.T) {
	cfg := DefaultConfig()
	s, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	outer := cfg.StarRadius + cfg.StarDepth
	for i, star := range s.Stars.Stars {
		r := float64(star.Position.Len())
		if r < cfg.StarRadius-1e-3 || r > outer+1e-3 {
			t.Fatalf("Star %d at radius %v outside [%v, %v]", i, r, cfg.StarRadius, outer)
		}
		if star.Size < float32(0.5*cfg.StarFactor) || star.Size > float32(cfg.StarFactor) {
			t.Fatalf("Star %d size %v outside [%v, %v]", i, star.Size, 0.5*cfg.StarFactor, cfg.StarFactor)
		}
		if star.Color.R > 0.9+1e-9 || star.Color.R != star.Color.G || star.Color.G != star.Color.B {
			t.Fatalf("Expected unsaturated star colour, got %+v", star.Color)
		}
	}
}

func TestCameraOrbit(t *testing.T) {
	c := Camera{FOV: 55, Distance: 5, OrbitSpeed: 0.6}

	eye := c.At(0)
	if !near(eye[0], 0) || !near(eye[1], 0) || !near(eye[2], 5) {
		t.Errorf("Expected eye (0, 0, 5) at mount, got %v", eye)
	}

	quarter := (math.Pi / 2) / c.OrbitRate()
	eye = c.At(quarter)
	if math.Abs(float64(eye[0])+5) > 1e-4 || math.Abs(float64(eye[2])) > 1e-4 {
		t.Errorf("Expected eye (-5, 0, 0) after a quarter turn, got %v", eye)
	}
	if d := eye.Len(); math.Abs(float64(d)-5) > 1e-4 {
		t.Errorf("Expected fixed orbit distance 5, got %v", d)
	}
}
