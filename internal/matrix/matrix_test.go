// Package matrix provides unit tests for the matrix engine.
package matrix

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// mustPanic asserts that fn panics with the given engine error.
func mustPanic(t *testing.T, want Error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", want)
		}
		if r != want {
			t.Fatalf("expected panic with %v, got %v", want, r)
		}
	}()
	fn()
}

// TestNewFromSlice tests construction from row-major entries.
func TestNewFromSlice(t *testing.T) {
	m := NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})

	if rows, cols := m.Dims(); rows != 2 || cols != 3 {
		t.Fatalf("Dims() = %dx%d, want 2x3", rows, cols)
	}
	if m.At(0, 0) != 1 || m.At(0, 2) != 3 || m.At(1, 1) != 5 {
		t.Errorf("unexpected entries: %v", m.RawData())
	}

	mustPanic(t, ErrDimensionMismatch, func() {
		NewFromSlice(2, 2, []float64{1, 2, 3})
	})
}

// TestNewFromSliceCopies tests that the source slice is not aliased.
func TestNewFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m := NewFromSlice(2, 2, src)
	src[0] = 99

	if m.At(0, 0) != 1 {
		t.Errorf("matrix aliases the source slice")
	}
}

// TestAtOutOfRange tests index checking on every access.
func TestAtOutOfRange(t *testing.T) {
	m := New(2, 3)

	tests := []struct{ i, j int }{
		{2, 0},
		{0, 3},
		{-1, 0},
		{0, -1},
		{5, 5},
	}

	for _, tt := range tests {
		mustPanic(t, ErrIndexOutOfRange, func() { m.At(tt.i, tt.j) })
		mustPanic(t, ErrIndexOutOfRange, func() { m.Set(tt.i, tt.j, 1) })
	}
}

// TestTranspose tests the transpose against its definition.
func TestTranspose(t *testing.T) {
	m := NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr := m.Transpose()

	if rows, cols := tr.Dims(); rows != 3 || cols != 2 {
		t.Fatalf("transpose Dims() = %dx%d, want 3x2", rows, cols)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if tr.At(j, i) != m.At(i, j) {
				t.Errorf("transpose[%d][%d] = %v, want %v", j, i, tr.At(j, i), m.At(i, j))
			}
		}
	}
}

// TestTransposeInvolution tests transpose(transpose(A)) == A.
func TestTransposeInvolution(t *testing.T) {
	m := Random(7, 5)
	if !Equal(m.Transpose().Transpose(), m) {
		t.Errorf("double transpose does not reproduce the matrix")
	}
}

// TestSub tests elementwise subtraction and its shape requirement.
func TestSub(t *testing.T) {
	a := NewFromSlice(2, 2, []float64{5, 4, 3, 2})
	b := NewFromSlice(2, 2, []float64{1, 1, 2, 2})

	diff := Sub(a, b)
	want := NewFromSlice(2, 2, []float64{4, 3, 1, 0})
	if !Equal(diff, want) {
		t.Errorf("Sub = %v, want %v", diff.RawData(), want.RawData())
	}

	// A minus itself is the zero matrix of the same shape.
	zero := Sub(a, a)
	for i, v := range zero.RawData() {
		if v != 0 {
			t.Errorf("Sub(a, a) entry %d = %v, want 0", i, v)
		}
	}

	mustPanic(t, ErrDimensionMismatch, func() { Sub(a, New(2, 3)) })
}

// TestHadamard tests the elementwise product.
func TestHadamard(t *testing.T) {
	a := NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	b := NewFromSlice(2, 2, []float64{5, 6, 7, 8})

	prod := Hadamard(a, b)
	want := NewFromSlice(2, 2, []float64{5, 12, 21, 32})
	if !Equal(prod, want) {
		t.Errorf("Hadamard = %v, want %v", prod.RawData(), want.RawData())
	}

	// Commutativity.
	if !Equal(Hadamard(a, b), Hadamard(b, a)) {
		t.Errorf("Hadamard is not commutative")
	}

	mustPanic(t, ErrDimensionMismatch, func() { Hadamard(a, New(3, 2)) })
}

// TestHadamardDistributesOverSub tests a*(b - c) == a*b - a*c.
func TestHadamardDistributesOverSub(t *testing.T) {
	a := Random(4, 3)
	b := Random(4, 3)
	c := Random(4, 3)

	left := Hadamard(a, Sub(b, c))
	right := Sub(Hadamard(a, b), Hadamard(a, c))

	for i := range left.RawData() {
		if math.Abs(left.RawData()[i]-right.RawData()[i]) > 1e-12 {
			t.Fatalf("entry %d: %v != %v", i, left.RawData()[i], right.RawData()[i])
		}
	}
}

// TestScaleAndNeg tests scalar multiplication and negation.
func TestScaleAndNeg(t *testing.T) {
	m := NewFromSlice(2, 2, []float64{1, -2, 3, -4})

	scaled := Scale(2, m)
	want := NewFromSlice(2, 2, []float64{2, -4, 6, -8})
	if !Equal(scaled, want) {
		t.Errorf("Scale = %v, want %v", scaled.RawData(), want.RawData())
	}

	if !Equal(Neg(m), Scale(-1, m)) {
		t.Errorf("Neg differs from Scale(-1, m)")
	}

	// Operands stay untouched.
	if m.At(0, 0) != 1 {
		t.Errorf("Scale mutated its operand")
	}
}

// TestMul tests the matrix product against a hand-computed case.
func TestMul(t *testing.T) {
	a := NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})

	prod := Mul(a, b)
	want := NewFromSlice(2, 2, []float64{58, 64, 139, 154})
	if !Equal(prod, want) {
		t.Errorf("Mul = %v, want %v", prod.RawData(), want.RawData())
	}

	mustPanic(t, ErrDimensionMismatch, func() { Mul(a, New(2, 2)) })
}

// TestMulMatchesGonum cross-checks the product against gonum/mat on a
// larger random case.
func TestMulMatchesGonum(t *testing.T) {
	a := Random(6, 9)
	b := Random(9, 4)
	prod := Mul(a, b)

	ga := mat.NewDense(6, 9, a.RawData())
	gb := mat.NewDense(9, 4, b.RawData())
	var want mat.Dense
	want.Mul(ga, gb)

	for i := 0; i < 6; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(prod.At(i, j)-want.At(i, j)) > 1e-12 {
				t.Fatalf("Mul[%d][%d] = %v, gonum says %v", i, j, prod.At(i, j), want.At(i, j))
			}
		}
	}
}

// TestMulShapes tests that the product of an NxK by a KxM matrix is NxM.
func TestMulShapes(t *testing.T) {
	tests := []struct{ n, k, m int }{
		{1, 1, 1},
		{2, 3, 4},
		{5, 1, 5},
		{3, 7, 2},
	}

	for _, tt := range tests {
		prod := Mul(New(tt.n, tt.k), New(tt.k, tt.m))
		if rows, cols := prod.Dims(); rows != tt.n || cols != tt.m {
			t.Errorf("Mul(%dx%d, %dx%d) = %dx%d, want %dx%d",
				tt.n, tt.k, tt.k, tt.m, rows, cols, tt.n, tt.m)
		}
	}
}

// TestApply tests the elementwise lift.
func TestApply(t *testing.T) {
	m := NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	squared := m.Apply(func(x float64) float64 { return x * x })

	want := NewFromSlice(2, 2, []float64{1, 4, 9, 16})
	if !Equal(squared, want) {
		t.Errorf("Apply = %v, want %v", squared.RawData(), want.RawData())
	}
	if m.At(1, 1) != 4 {
		t.Errorf("Apply mutated its operand")
	}
}

// TestRandomZeroAvoidance tests by sampling that random entries stay in
// [-1, 1] and that no entry is ever exactly zero.
func TestRandomZeroAvoidance(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		m := Random(50, 50)
		for i, v := range m.RawData() {
			if v == 0 {
				t.Fatalf("trial %d: entry %d is exactly zero", trial, i)
			}
			if v < -1 || v > 1 {
				t.Fatalf("trial %d: entry %d = %v outside [-1, 1]", trial, i, v)
			}
		}
	}
}

// TestClone tests that clones are independent copies.
func TestClone(t *testing.T) {
	m := NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	c.Set(0, 0, 99)

	if m.At(0, 0) != 1 {
		t.Errorf("Clone shares storage with the original")
	}
}
