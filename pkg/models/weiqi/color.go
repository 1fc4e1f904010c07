package weiqi

import (
	"errors"
	"strings"
)

var ErrInvalidColor = errors.New("weiqi: invalid color")

type Color int8

const (
	Black Color = 1
	White Color = -1
)

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return ""
}

func (c Color) Other() Color { return -c }

func (c Color) IsValid() bool { return c == Black || c == White }

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	}
	return 0, ErrInvalidColor
}
