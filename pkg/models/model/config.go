package model

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("model: invalid switch value")

// Config is an on/off command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON":   On,
	"On":   On,
	"on":   On,
	"1":    On,
	"true": On,

	"OFF":   Off,
	"Off":   Off,
	"off":   Off,
	"0":     Off,
	"false": Off,
}

// NewConfig treats every unknown value as Off.
func NewConfig(s string) Config {
	return configName[s]
}

func ParseConfig(s string) (Config, error) {
	c, ok := configName[s]
	if !ok {
		return Off, fmt.Errorf("%w: %q", ErrInvalidConfig, s)
	}
	return c, nil
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}
