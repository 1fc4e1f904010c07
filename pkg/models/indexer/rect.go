package indexer

import "fmt"

type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Rect indexes a Height x Width rectangle row by row.
type Rect struct {
	Height int
	Width  int
}

func NewRect(height, width int) Rect {
	return Rect{Height: height, Width: width}
}

func (r Rect) ToNum(p Point) int {
	if !r.IsValid(p) {
		invalid(p)
	}
	return p.Row*r.Width + p.Col
}

func (r Rect) ToIndex(n int) Point {
	if !r.InRange(n) {
		outOfRange(n, r.Range())
	}
	row := n / r.Width
	return Point{Row: row, Col: n - row*r.Width}
}

func (r Rect) IsValid(p Point) bool {
	return p.Row >= 0 && p.Row < r.Height && p.Col >= 0 && p.Col < r.Width
}

func (r Rect) Range() int { return r.Height * r.Width }

func (r Rect) InRange(n int) bool { return n >= 0 && n < r.Range() }
