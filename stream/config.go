package stream

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Display struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"display"`
	Playback struct {
		Speed int `yaml:"speed"`
	} `yaml:"playback"`
	Api struct {
		Addr       string `yaml:"addr"`
		Static     string `yaml:"static"`
		ResultsURL string `yaml:"resultsUrl"`
	} `yaml:"api"`
}

// DefaultConfig runs headless with a local API.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.Qos = 0
	c.Mqtt.Topics.Stream = "algoviz/stream"
	c.Mqtt.Topics.Control = "algoviz/control"
	c.Display.Width = 32
	c.Display.Height = 16
	c.Playback.Speed = 50
	c.Api.Addr = ":3000"
	c.Api.Static = "client/dist"
	return c
}

// LoadConfig reads a YAML config over the defaults. A missing file is not an
// error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}

	return c, nil
}

// Headless reports whether no broker is configured.
func (c Config) Headless() bool {
	return c.Mqtt.URL == ""
}
