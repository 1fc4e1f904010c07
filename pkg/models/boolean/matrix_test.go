package boolean

import (
	"math/rand"
	"testing"

	"github.com/HuXin0817/weiqi/pkg/models/indexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomMatrix(rng *rand.Rand, rows, columns indexer.Range) *Matrix[int, int] {
	m := MatrixFalses[int, int](rows, columns)
	for j := range int(rows) {
		for k := range int(columns) {
			m.Set(j, k, rng.Intn(3) == 0)
		}
	}
	return m
}

func TestMulSmall(t *testing.T) {
	ix := indexer.Range(3)
	a := MatrixFalses[int, int](ix, ix)
	a.Set(0, 1, true)
	a.Set(1, 2, true)

	aa := Mul(a, a)
	assert.True(t, aa.Get(0, 2))
	assert.False(t, aa.Get(0, 1))
	assert.False(t, aa.Get(1, 2))
	assert.True(t, Mul(aa, a).IsEmpty())
}

func TestMulShapes(t *testing.T) {
	a := MatrixTrues[int, indexer.Point](indexer.Range(2), indexer.NewRect(2, 2))
	b := MatrixFalses[indexer.Point, int](indexer.NewRect(2, 2), indexer.Range(5))
	b.Set(indexer.Point{Row: 1, Col: 1}, 4, true)

	ab := Mul(a, b)
	assert.Equal(t, indexer.Indexer[int](indexer.Range(2)), ab.Rows())
	assert.Equal(t, indexer.Indexer[int](indexer.Range(5)), ab.Columns())
	assert.True(t, ab.Get(0, 4))
	assert.True(t, ab.Get(1, 4))
	assert.False(t, ab.Get(1, 3))
}

func TestMulDimensionMismatch(t *testing.T) {
	a := MatrixFalses[int, int](indexer.Range(2), indexer.Range(3))
	b := MatrixFalses[int, int](indexer.Range(4), indexer.Range(2))

	assert.Panics(t, func() { Mul(a, b) })
}

func TestMulAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 20 {
		a := randomMatrix(rng, 4, 5)
		b := randomMatrix(rng, 5, 3)
		c := randomMatrix(rng, 3, 6)
		assert.True(t, Mul(Mul(a, b), c).Equal(Mul(a, Mul(b, c))))
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := randomMatrix(rng, 4, 6)

	assert.True(t, Mul(Identity[int](indexer.Range(4)), a).Equal(a))
	assert.True(t, Mul(a, FromDiag(Trues[int](indexer.Range(6)))).Equal(a))
}

func TestFromDiag(t *testing.T) {
	v := vec(indexer.Range(4), "1001")
	d := FromDiag(v)
	for j := range 4 {
		for k := range 4 {
			assert.Equal(t, j == k && v.GetNum(j), d.Get(j, k))
		}
	}
}

func TestEvalAgreesWithColumnProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 20 {
		a := randomMatrix(rng, 5, 4)
		v := Falses[int](indexer.Range(4))
		for n := range 4 {
			if rng.Intn(2) == 0 {
				v.SetNum(n)
			}
		}

		got := a.Eval(v)
		want := Mul(a, Column(v))
		require.Equal(t, 5, got.Len())
		for j := range 5 {
			assert.Equal(t, want.Get(j, struct{}{}), got.Get(j))
		}
	}
}

func TestTransposeAndSymmetry(t *testing.T) {
	ix := indexer.Range(3)
	m := MatrixFalses[int, int](ix, ix)
	m.Set(0, 2, true)
	assert.False(t, IsSymmetric(m))
	assert.True(t, Transpose(m).Get(2, 0))

	SymSet(m, 0, 2)
	assert.True(t, IsSymmetric(m))
	assert.False(t, HasSelfLoops(m))
	assert.True(t, HasSelfLoops(Identity[int](ix)))
}

func TestMatrixUnion(t *testing.T) {
	ix := indexer.Range(2)
	a := MatrixFalses[int, int](ix, ix)
	a.Set(0, 1, true)
	u := MatrixUnion(a, Identity[int](ix))

	assert.True(t, u.Get(0, 0))
	assert.True(t, u.Get(0, 1))
	assert.False(t, u.Get(1, 0))
	assert.Panics(t, func() { MatrixUnion(a, MatrixFalses[int, int](indexer.Range(3), ix)) })
}

func TestMatrixEqualRequiresSameIndexers(t *testing.T) {
	a := MatrixFalses[int, int](indexer.Range(6), indexer.Range(1))
	b := MatrixFalses[int, int](indexer.Range(6), indexer.Range(1))
	c := a.Clone()
	c.Set(5, 0, true)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
