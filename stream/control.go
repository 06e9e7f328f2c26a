package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// ErrUnknownControl is returned for a control message with an unrecognised type.
var ErrUnknownControl = errors.New("unknown control message")

// Controls receives playback commands.
type Controls interface {
	Pause()
	Resume()
	Reset()
	SetSpeed(speed int)
}

// Subscriber is the part of mqtt.Client used to receive control messages.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

type ControlMessage struct {
	Type  string `json:"type"`
	Speed int    `json:"speed,omitempty"`
}

// ControlListener drives Controls from JSON messages on the control topic.
type ControlListener struct {
	config   Config
	client   Subscriber
	controls Controls
}

func NewControlListener(config Config, client Subscriber, controls Controls) *ControlListener {
	c := new(ControlListener)
	c.config = config
	c.client = client
	c.controls = controls
	return c
}

// Dispatch applies a single control message.
func (c *ControlListener) Dispatch(m ControlMessage) error {
	switch m.Type {
	case "pause":
		c.controls.Pause()
	case "resume":
		c.controls.Resume()
	case "reset":
		c.controls.Reset()
	case "speed":
		c.controls.SetSpeed(m.Speed)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownControl, m.Type)
	}

	controlMessages.WithLabelValues(m.Type).Inc()
	return nil
}

func (c *ControlListener) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Ignoring malformed control message: %v", err)
		return
	}
	if err := c.Dispatch(message); err != nil {
		log.Println(err)
	}
}

// Subscribe starts listening on the control topic.
func (c *ControlListener) Subscribe() error {
	token := c.client.Subscribe(c.config.Mqtt.Topics.Control, c.config.Mqtt.Qos, c.handleClientMessages)
	token.Wait()
	return token.Error()
}
