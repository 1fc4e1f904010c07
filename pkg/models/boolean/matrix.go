package boolean

import (
	"fmt"

	"github.com/HuXin0817/weiqi/pkg/models/indexer"
)

// Matrix is a relation from the row domain J to the column domain K.
// The entries are laid out row-major as a vector over indexer.Rect.
type Matrix[J, K comparable] struct {
	rows     indexer.Indexer[J]
	columns  indexer.Indexer[K]
	contents *Vector[indexer.Point]
}

func newMatrix[J, K comparable](rows indexer.Indexer[J], columns indexer.Indexer[K], contents *Vector[indexer.Point]) *Matrix[J, K] {
	return &Matrix[J, K]{rows: rows, columns: columns, contents: contents}
}

func shape(height, width int) indexer.Rect {
	return indexer.NewRect(height, width)
}

func MatrixFalses[J, K comparable](rows indexer.Indexer[J], columns indexer.Indexer[K]) *Matrix[J, K] {
	return newMatrix(rows, columns, Falses[indexer.Point](shape(rows.Range(), columns.Range())))
}

func MatrixTrues[J, K comparable](rows indexer.Indexer[J], columns indexer.Indexer[K]) *Matrix[J, K] {
	return newMatrix(rows, columns, Trues[indexer.Point](shape(rows.Range(), columns.Range())))
}

// FromDiag places v on the diagonal of an otherwise false square matrix.
func FromDiag[T comparable](v *Vector[T]) *Matrix[T, T] {
	ix := v.Indexer()
	res := MatrixFalses(ix, ix)
	for n, b := range v.data {
		res.contents.data[n*ix.Range()+n] = b
	}
	return res
}

func Identity[T comparable](ix indexer.Indexer[T]) *Matrix[T, T] {
	return FromDiag(Trues(ix))
}

// Column writes v as a matrix with a single column.
func Column[T comparable](v *Vector[T]) *Matrix[T, struct{}] {
	rect := shape(v.Indexer().Range(), 1)
	return newMatrix[T, struct{}](v.Indexer(), indexer.Unit{}, Reindex[T, indexer.Point](v.Clone(), rect))
}

func (m *Matrix[J, K]) Rows() indexer.Indexer[J] { return m.rows }

func (m *Matrix[J, K]) Columns() indexer.Indexer[K] { return m.columns }

func (m *Matrix[J, K]) at(j, k int) bool {
	return m.contents.data[j*m.columns.Range()+k]
}

func (m *Matrix[J, K]) Get(j J, k K) bool {
	return m.at(m.rows.ToNum(j), m.columns.ToNum(k))
}

func (m *Matrix[J, K]) Set(j J, k K, value bool) {
	m.contents.data[m.rows.ToNum(j)*m.columns.Range()+m.columns.ToNum(k)] = value
}

// SymSet relates a and b in both directions.
func SymSet[T comparable](m *Matrix[T, T], a, b T) {
	m.Set(a, b, true)
	m.Set(b, a, true)
}

// Mul is the boolean semiring product: entry (j, l) is the OR over k of
// a[j, k] AND b[k, l].
func Mul[J, K, L comparable](a *Matrix[J, K], b *Matrix[K, L]) *Matrix[J, L] {
	if !indexer.Same(a.columns, b.rows) {
		panic(fmt.Errorf("%w: %v and %v", ErrDimensionMismatch, a.columns, b.rows))
	}

	inner := a.columns.Range()
	height := a.rows.Range()
	width := b.columns.Range()
	data := make([]bool, height*width)
	for j := range height {
		for l := range width {
			for k := range inner {
				if a.at(j, k) && b.at(k, l) {
					data[j*width+l] = true
					break
				}
			}
		}
	}

	return newMatrix(a.rows, b.columns, FromSlice[indexer.Point](shape(height, width), data))
}

// Eval applies m to v, read as a column vector.
func (m *Matrix[J, K]) Eval(v *Vector[K]) *Vector[J] {
	product := Mul(m, Column(v))
	return Reindex(product.contents, m.rows)
}

// MatrixUnion is the entrywise OR of two relations of the same shape.
func MatrixUnion[J, K comparable](a, b *Matrix[J, K]) *Matrix[J, K] {
	if !indexer.Same(a.rows, b.rows) || !indexer.Same(a.columns, b.columns) {
		panic(fmt.Errorf("%w: %vx%v and %vx%v", ErrIndexerMismatch, a.rows, a.columns, b.rows, b.columns))
	}
	return newMatrix(a.rows, a.columns, Union(a.contents, b.contents))
}

func Transpose[J, K comparable](m *Matrix[J, K]) *Matrix[K, J] {
	height := m.rows.Range()
	width := m.columns.Range()
	res := MatrixFalses(m.columns, m.rows)
	for j := range height {
		for k := range width {
			res.contents.data[k*height+j] = m.at(j, k)
		}
	}
	return res
}

func IsSymmetric[T comparable](m *Matrix[T, T]) bool {
	return indexer.Same(m.rows, m.columns) && Transpose(m).Equal(m)
}

func HasSelfLoops[T comparable](m *Matrix[T, T]) bool {
	for n := range m.rows.Range() {
		if m.at(n, n) {
			return true
		}
	}
	return false
}

func (m *Matrix[J, K]) Clone() *Matrix[J, K] {
	return newMatrix(m.rows, m.columns, m.contents.Clone())
}

func (m *Matrix[J, K]) Equal(other *Matrix[J, K]) bool {
	return indexer.Same(m.rows, other.rows) &&
		indexer.Same(m.columns, other.columns) &&
		m.contents.Equal(other.contents)
}

func (m *Matrix[J, K]) IsEmpty() bool { return m.contents.IsEmpty() }
