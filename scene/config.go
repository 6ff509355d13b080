package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds every overridable scene parameter.
type Config struct {
	BubbleCount       int     `yaml:"bubbleCount" env:"HERO_BUBBLE_COUNT"`
	BubbleSeedSpacing float64 `yaml:"bubbleSeedSpacing" env:"HERO_BUBBLE_SEED_SPACING"`
	BubbleColor       string  `yaml:"bubbleColor" env:"HERO_BUBBLE_COLOR"`
	BubbleOpacity     float64 `yaml:"bubbleOpacity" env:"HERO_BUBBLE_OPACITY"`

	KnotSpeed float64 `yaml:"knotSpeed" env:"HERO_KNOT_SPEED"`
	KnotColor string  `yaml:"knotColor" env:"HERO_KNOT_COLOR"`

	StarCount      int     `yaml:"starCount" env:"HERO_STAR_COUNT"`
	StarRadius     float64 `yaml:"starRadius" env:"HERO_STAR_RADIUS"`
	StarDepth      float64 `yaml:"starDepth" env:"HERO_STAR_DEPTH"`
	StarFactor     float64 `yaml:"starFactor" env:"HERO_STAR_FACTOR"`
	StarSaturation float64 `yaml:"starSaturation" env:"HERO_STAR_SATURATION"`
	StarSeed       int64   `yaml:"starSeed" env:"HERO_STAR_SEED"`
	StarFade       bool    `yaml:"starFade" env:"HERO_STAR_FADE"`

	AmbientIntensity     float64 `yaml:"ambientIntensity" env:"HERO_AMBIENT_INTENSITY"`
	DirectionalIntensity float64 `yaml:"directionalIntensity" env:"HERO_DIRECTIONAL_INTENSITY"`
	Environment          string  `yaml:"environment" env:"HERO_ENVIRONMENT"`

	CameraFov      float64 `yaml:"cameraFov" env:"HERO_CAMERA_FOV"`
	CameraDistance float64 `yaml:"cameraDistance" env:"HERO_CAMERA_DISTANCE"`
	OrbitSpeed     float64 `yaml:"orbitSpeed" env:"HERO_ORBIT_SPEED"`
}

// DefaultConfig returns the hero scene as the portfolio shows it.
func DefaultConfig() Config {
	return Config{
		BubbleCount:       DefaultBubbleCount,
		BubbleSeedSpacing: DefaultBubbleSeedSpacing,
		BubbleColor:       "#ffffff",
		BubbleOpacity:     0.6,

		KnotSpeed: DefaultKnotSpeed,
		KnotColor: "#6ee7b7",

		StarCount:      1200,
		StarRadius:     50,
		StarDepth:      40,
		StarFactor:     2,
		StarSaturation: 0,
		StarSeed:       1,
		StarFade:       true,

		AmbientIntensity:     0.6,
		DirectionalIntensity: 1.1,
		Environment:          "city",

		CameraFov:      55,
		CameraDistance: 5,
		OrbitSpeed:     0.6,
	}
}

// Validate reports the first invalid parameter as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.BubbleCount < 0:
		return configErrorf("bubbleCount", "must not be negative, got %d", c.BubbleCount)
	case c.StarCount < 0:
		return configErrorf("starCount", "must not be negative, got %d", c.StarCount)
	case c.StarRadius <= 0:
		return configErrorf("starRadius", "must be positive, got %g", c.StarRadius)
	case c.StarDepth < 0:
		return configErrorf("starDepth", "must not be negative, got %g", c.StarDepth)
	case c.StarFactor < 0:
		return configErrorf("starFactor", "must not be negative, got %g", c.StarFactor)
	case c.StarSaturation < 0 || c.StarSaturation > 1:
		return configErrorf("starSaturation", "must be within [0, 1], got %g", c.StarSaturation)
	case c.BubbleOpacity < 0 || c.BubbleOpacity > 1:
		return configErrorf("bubbleOpacity", "must be within [0, 1], got %g", c.BubbleOpacity)
	case c.AmbientIntensity < 0:
		return configErrorf("ambientIntensity", "must not be negative, got %g", c.AmbientIntensity)
	case c.DirectionalIntensity < 0:
		return configErrorf("directionalIntensity", "must not be negative, got %g", c.DirectionalIntensity)
	case !environments[c.Environment]:
		return configErrorf("environment", "unknown preset %q", c.Environment)
	case c.CameraFov <= 0 || c.CameraFov >= 180:
		return configErrorf("cameraFov", "must be within (0, 180), got %g", c.CameraFov)
	case c.CameraDistance <= 0:
		return configErrorf("cameraDistance", "must be positive, got %g", c.CameraDistance)
	}

	if _, err := colorful.Hex(c.KnotColor); err != nil {
		return configErrorf("knotColor", "%v", err)
	}
	if _, err := colorful.Hex(c.BubbleColor); err != nil {
		return configErrorf("bubbleColor", "%v", err)
	}
	return nil
}
