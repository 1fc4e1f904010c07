package vertex

import (
	"testing"

	"github.com/HuXin0817/weiqi/pkg/models/indexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	rect := indexer.NewRect(19, 19)
	tests := []struct {
		in   string
		want indexer.Point
	}{
		{"A1", indexer.Point{Row: 18, Col: 0}},
		{"a19", indexer.Point{Row: 0, Col: 0}},
		{"J10", indexer.Point{Row: 9, Col: 8}},
		{"T19", indexer.Point{Row: 0, Col: 18}},
		{" d4 ", indexer.Point{Row: 15, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in, rect)
			require.NoError(t, err)
			assert.False(t, v.Pass)
			assert.Equal(t, tt.want, v.Point)
		})
	}
}

func TestParsePass(t *testing.T) {
	v, err := Parse("PASS", indexer.NewRect(9, 9))
	require.NoError(t, err)
	assert.True(t, v.Pass)
	assert.Equal(t, "pass", Format(v, indexer.NewRect(9, 9)))
}

func TestParseInvalid(t *testing.T) {
	rect := indexer.NewRect(9, 9)
	for _, s := range []string{"", "A", "I5", "K1", "A0", "A10", "Z-1", "11", "A+3", "A03", "B-0"} {
		_, err := Parse(s, rect)
		assert.ErrorIs(t, err, ErrInvalidVertex, s)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	rect := indexer.NewRect(9, 13)
	for _, p := range indexer.Positions[indexer.Point](rect) {
		s := FormatPoint(p, rect)
		v, err := Parse(s, rect)
		require.NoError(t, err, s)
		assert.Equal(t, p, v.Point)
	}
}
