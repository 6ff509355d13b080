package stream

import (
	"encoding/json"
	"fmt"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/herotx/scene"
)

// MQTTSurface streams frames to a remote renderer over MQTT. The scene is
// published retained so a renderer joining late can draw straight away.
type MQTTSurface struct {
	config Config
	client mqtt.Client
}

// NewMQTTSurface creates an instance of an MQTTSurface.
func NewMQTTSurface(config Config, client mqtt.Client) *MQTTSurface {
	s := new(MQTTSurface)
	s.config = config
	s.client = client
	return s
}

// Mount publishes the scene description as JSON.
func (s *MQTTSurface) Mount(sc *scene.Scene) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return s.publish(s.config.Mqtt.Topics.Scene, true, b)
}

// Draw sends a frame as binary.
func (s *MQTTSurface) Draw(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Number, err)
	}
	return s.publish(s.config.Mqtt.Topics.Frame, false, b)
}

// Unmount clears the retained scene.
func (s *MQTTSurface) Unmount() error {
	return s.publish(s.config.Mqtt.Topics.Scene, true, []byte{})
}

func (s *MQTTSurface) publish(topic string, retained bool, payload []byte) error {
	token := s.client.Publish(topic, s.config.Mqtt.QoS, retained, payload)
	if !token.WaitTimeout(s.config.Mqtt.PublishTimeout) {
		return fmt.Errorf("publish %s: timed out after %v", topic, s.config.Mqtt.PublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
