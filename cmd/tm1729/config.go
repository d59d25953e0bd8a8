package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/callebjorkell/tm1729/internal/bus"
	"github.com/callebjorkell/tm1729/internal/tm1729"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "tm1729.yaml"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

type Config struct {
	Pins struct {
		Clock string `yaml:"clock"`
		Data  string `yaml:"data"`
	} `yaml:"pins"`
	Log struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"maxSizeMB"`
		MaxBackups int    `yaml:"maxBackups"`
	} `yaml:"log"`
	Fields map[string]int `yaml:"fields"`
}

type fieldValue struct {
	Field tm1729.Field
	Value int
}

// FieldValues returns the configured fields in display order.
func (c Config) FieldValues() []fieldValue {
	var values []fieldValue
	for _, f := range tm1729.Fields() {
		for name, v := range c.Fields {
			if p, err := tm1729.ParseField(name); err == nil && p == f {
				values = append(values, fieldValue{Field: f, Value: v})
			}
		}
	}
	return values
}

func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigFile {
		log.Debugf("No %s found, using defaults", path)
		return parseConfig(nil)
	}
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	if len(content) > 0 {
		err := yaml.Unmarshal(content, c)
		if err != nil {
			return nil, err
		}
	}

	if c.Pins.Clock == "" {
		c.Pins.Clock = bus.DefaultClockPin
	}
	if c.Pins.Data == "" {
		c.Pins.Data = bus.DefaultDataPin
	}
	if c.Pins.Clock == c.Pins.Data {
		return nil, fmt.Errorf("clock and data must use different pins, both are %s", c.Pins.Clock)
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = defaultMaxSizeMB
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = defaultMaxBackups
	}

	seen := make(map[tm1729.Field]string)
	for name, v := range c.Fields {
		f, err := tm1729.ParseField(name)
		if err != nil {
			return nil, fmt.Errorf("fields: %w", err)
		}
		if prev, ok := seen[f]; ok {
			return nil, fmt.Errorf("fields: %q and %q both set %v", prev, name, f)
		}
		seen[f] = name

		min, max, _ := tm1729.Range(f)
		if v < min || v > max {
			return nil, fmt.Errorf("fields: %s must be within %d..%d, got %d", name, min, max, v)
		}
	}

	return c, nil
}
