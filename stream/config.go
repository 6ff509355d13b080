package stream

import (
	"time"

	"github.com/matt-g-everett/herotx/scene"
)

// Config controls frame pacing and where frames are published.
type Config struct {
	// FrameRate is the number of frames per second the Scheduler ticks at.
	// Zero leaves pacing to the host, which calls Scheduler.Step itself.
	FrameRate float64 `yaml:"frameRate" env:"HERO_FRAME_RATE"`
	// FadeIn is how long the scene takes to fade in after mount, in seconds.
	FadeIn float64 `yaml:"fadeIn" env:"HERO_FADE_IN"`

	Mqtt struct {
		URL            string        `yaml:"url" env:"HERO_MQTT_URL"`
		Username       string        `yaml:"username" env:"HERO_MQTT_USERNAME"`
		Password       string        `yaml:"password" env:"HERO_MQTT_PASSWORD"`
		ClientID       string        `yaml:"clientID" env:"HERO_MQTT_CLIENT_ID"`
		QoS            byte          `yaml:"qos" env:"HERO_MQTT_QOS"`
		PublishTimeout time.Duration `yaml:"publishTimeout" env:"HERO_MQTT_PUBLISH_TIMEOUT"`
		Topics         struct {
			Frame string `yaml:"frame" env:"HERO_MQTT_TOPIC_FRAME"`
			Scene string `yaml:"scene" env:"HERO_MQTT_TOPIC_SCENE"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
}

// DefaultConfig returns a 60Hz stream with a short fade in.
func DefaultConfig() Config {
	var c Config
	c.FrameRate = 60
	c.FadeIn = 1.5
	c.Mqtt.ClientID = "herotx"
	c.Mqtt.PublishTimeout = 100 * time.Millisecond
	c.Mqtt.Topics.Frame = "hero/frame"
	c.Mqtt.Topics.Scene = "hero/scene"
	return c
}

// Validate reports the first invalid parameter as a *scene.ConfigError.
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return &scene.ConfigError{Field: "frameRate", Reason: "must not be negative"}
	case c.FadeIn < 0:
		return &scene.ConfigError{Field: "fadeIn", Reason: "must not be negative"}
	case c.Mqtt.QoS > 2:
		return &scene.ConfigError{Field: "mqtt.qos", Reason: "must be 0, 1 or 2"}
	case c.Mqtt.PublishTimeout <= 0:
		return &scene.ConfigError{Field: "mqtt.publishTimeout", Reason: "must be positive"}
	}
	return nil
}

// FrameInterval returns the time between ticks, or zero for host pacing.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate == 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.FrameRate)
}
