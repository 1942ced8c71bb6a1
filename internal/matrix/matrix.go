// Package matrix provides a fixed-shape, value-semantics matrix engine.
//
// Every operation is pure: it builds and returns a new Matrix and never
// mutates an operand. Shapes are fixed at construction time; because Go has
// no compile-time dimension parameters, shape and index violations are
// checked on every operation and panic with the exported Error values,
// following the convention of gonum's mat package.
package matrix

import (
	"math/rand"
)

// Error is the panic value used for shape and index violations.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	// ErrIndexOutOfRange is panicked when an element access lies outside
	// the declared shape.
	ErrIndexOutOfRange = Error{"matrix: index out of range"}

	// ErrDimensionMismatch is panicked when an operation is applied to
	// matrices with algebraically incompatible shapes.
	ErrDimensionMismatch = Error{"matrix: dimension mismatch"}
)

// Matrix is a rows x cols grid of float64 entries stored row-major.
// The entry at row i, column j lives at data[i*cols+j].
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a zero-initialized rows x cols matrix.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrDimensionMismatch)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewFromSlice creates a rows x cols matrix from row-major entries.
// The slice is copied, so the caller keeps ownership of it.
func NewFromSlice(rows, cols int, entries []float64) *Matrix {
	if len(entries) != rows*cols {
		panic(ErrDimensionMismatch)
	}
	m := New(rows, cols)
	copy(m.data, entries)
	return m
}

// NewColumnVector creates an n x 1 matrix holding the given entries.
func NewColumnVector(entries []float64) *Matrix {
	return NewFromSlice(len(entries), 1, entries)
}

// Random creates a rows x cols matrix with entries drawn uniformly from
// [-1, 1]. An entry that lands exactly on 0 is nudged to 0.01 so that no
// weight starts out with zero gradient flow through its connection.
func Random(rows, cols int) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		v := rand.Float64()*2 - 1
		if v == 0 {
			v = 0.01
		}
		m.data[i] = v
	}
	return m
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndexOutOfRange)
	}
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndexOutOfRange)
	}
	m.data[i*m.cols+j] = v
}

// RawData returns the underlying row-major entries. The slice aliases the
// matrix storage; callers must treat it as read-only.
func (m *Matrix) RawData() []float64 {
	return m.data
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	return NewFromSlice(m.rows, m.cols, m.data)
}

// Transpose returns the cols x rows matrix with result[j][i] = m[i][j].
func (m *Matrix) Transpose() *Matrix {
	result := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[j*result.cols+i] = m.data[i*m.cols+j]
		}
	}
	return result
}

// Sub returns the elementwise difference a - b. Both operands must share
// the same shape.
func Sub(a, b *Matrix) *Matrix {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrDimensionMismatch)
	}
	result := New(a.rows, a.cols)
	for i := range result.data {
		result.data[i] = a.data[i] - b.data[i]
	}
	return result
}

// Hadamard returns the elementwise product of a and b. Both operands must
// share the same shape.
func Hadamard(a, b *Matrix) *Matrix {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrDimensionMismatch)
	}
	result := New(a.rows, a.cols)
	for i := range result.data {
		result.data[i] = a.data[i] * b.data[i]
	}
	return result
}

// Scale returns the matrix with every entry of m multiplied by scalar.
func Scale(scalar float64, m *Matrix) *Matrix {
	result := New(m.rows, m.cols)
	for i := range result.data {
		result.data[i] = scalar * m.data[i]
	}
	return result
}

// Neg returns m with every entry negated.
func Neg(m *Matrix) *Matrix {
	return Scale(-1, m)
}

// Mul returns the matrix product of an n x k matrix a and a k x m matrix b.
// Panics with ErrDimensionMismatch when cols(a) != rows(b).
func Mul(a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic(ErrDimensionMismatch)
	}
	result := New(a.rows, b.cols)
	// Standard O(n*k*m) product. The k loop walks the i-th row of a and
	// the j-th column of b.
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var sum float64
			for k := 0; k < a.cols; k++ {
				sum += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			result.data[i*result.cols+j] = sum
		}
	}
	return result
}

// Apply returns the matrix obtained by applying f independently to every
// entry of m.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	result := New(m.rows, m.cols)
	for i := range result.data {
		result.data[i] = f(m.data[i])
	}
	return result
}

// Equal reports whether a and b have the same shape and identical entries.
func Equal(a, b *Matrix) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
