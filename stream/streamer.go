package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client used to send frames.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer sends RGB data frames to a display over MQTT. A Streamer with no
// client is headless and drops every frame.
type Streamer struct {
	client Publisher
	topic  string
	qos    byte
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Publisher) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.qos = config.Mqtt.Qos
	return s
}

// Headless reports whether frames are being dropped.
func (s *Streamer) Headless() bool {
	return s.client == nil
}

// SendFrame sends a frame as binary over MQTT.
func (s *Streamer) SendFrame(f *Frame) error {
	if s.client == nil {
		return nil
	}

	b, err := f.MarshalBinary()
	if err != nil {
		publishErrors.Inc()
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		publishErrors.Inc()
		return err
	}

	framesPublished.Inc()
	return nil
}

// Run sends frames from animation at the given interval until ctx is done.
func (s *Streamer) Run(ctx context.Context, animation Animation, interval time.Duration) {
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-publishTimer.C:
			f := animation.CalculateFrame(now.Sub(start).Milliseconds())
			if err := s.SendFrame(f); err != nil {
				log.Printf("Failed to publish frame: %v", err)
			}
		}
	}
}
