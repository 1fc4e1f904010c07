// Package vertex translates GTP vertex notation ("D4", "pass") to points of
// a rectangular board. Columns are letters skipping I; row 1 is the bottom
// row, which is Row height-1 of indexer.Rect.
package vertex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/weiqi/pkg/models/indexer"
)

const columns = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

const MaxWidth = len(columns)

var ErrInvalidVertex = errors.New("vertex: invalid vertex")

type Vertex struct {
	Pass  bool
	Point indexer.Point
}

func Parse(s string, rect indexer.Rect) (Vertex, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "PASS" {
		return Vertex{Pass: true}, nil
	}

	if len(s) < 2 {
		return Vertex{}, fmt.Errorf("%w: %q", ErrInvalidVertex, s)
	}

	// Rows are plain decimals: no sign, no leading zero.
	col := strings.IndexByte(columns, s[0])
	row, err := strconv.Atoi(s[1:])
	if col < 0 || err != nil || s[1] < '1' || s[1] > '9' {
		return Vertex{}, fmt.Errorf("%w: %q", ErrInvalidVertex, s)
	}

	p := indexer.Point{Row: rect.Height - row, Col: col}
	if !rect.IsValid(p) {
		return Vertex{}, fmt.Errorf("%w: %q outside %dx%d", ErrInvalidVertex, s, rect.Height, rect.Width)
	}
	return Vertex{Point: p}, nil
}

func Format(v Vertex, rect indexer.Rect) string {
	if v.Pass {
		return "pass"
	}
	return FormatPoint(v.Point, rect)
}

func FormatPoint(p indexer.Point, rect indexer.Rect) string {
	return fmt.Sprintf("%c%d", columns[p.Col], rect.Height-p.Row)
}
