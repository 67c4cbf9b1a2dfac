// Package matrix implements dense matrices over GF(2^m) field elements.
// It provides the linear-system solver and determinant used by the
// Peterson error locator in pkg/bch; elimination uses exact field
// arithmetic, so there are no conditioning concerns, only singularity.
package matrix

import (
	"errors"
	"fmt"

	"github.com/mrz1836/go-ecc/pkg/field"
)

// ErrSingular is returned when a linear system has no unique solution.
var ErrSingular = errors.New("matrix is singular")

// ErrDimension is returned for mismatched matrix/vector dimensions.
var ErrDimension = errors.New("dimension mismatch")

// Matrix is a rows x cols matrix of elements from a single field.
type Matrix struct {
	fd   *field.Field
	rows int
	cols int
	a    []field.Element // row-major
}

// New returns a zero rows x cols matrix over f.
func New(f *field.Field, rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic("matrix: non-positive dimensions")
	}
	a := make([]field.Element, rows*cols)
	for i := range a {
		a[i] = f.Zero()
	}
	return &Matrix{fd: f, rows: rows, cols: cols, a: a}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) field.Element {
	return m.a[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v field.Element) {
	m.a[i*m.cols+j] = v
}

// clone copies the matrix so elimination can work in place.
func (m *Matrix) clone() *Matrix {
	a := make([]field.Element, len(m.a))
	copy(a, m.a)
	return &Matrix{fd: m.fd, rows: m.rows, cols: m.cols, a: a}
}

// Solve returns x with M*x = b for a square matrix, using Gaussian
// elimination with row pivoting on non-zero entries. It returns
// ErrSingular when the matrix has no inverse and ErrDimension when b does
// not match the row count.
func (m *Matrix) Solve(b []field.Element) ([]field.Element, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("solve %dx%d: %w", m.rows, m.cols, ErrDimension)
	}
	if len(b) != m.rows {
		return nil, fmt.Errorf("solve: %d equations, %d values: %w", m.rows, len(b), ErrDimension)
	}

	n := m.rows
	w := m.clone()
	rhs := make([]field.Element, n)
	copy(rhs, b)

	// Forward elimination.
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !w.At(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			w.swapRows(pivot, col)
			rhs[pivot], rhs[col] = rhs[col], rhs[pivot]
		}

		pivInv, _ := w.At(col, col).Inverse()
		for r := col + 1; r < n; r++ {
			if w.At(r, col).IsZero() {
				continue
			}
			factor := w.At(r, col).Mul(pivInv)
			for c := col; c < n; c++ {
				w.Set(r, c, w.At(r, c).Sub(factor.Mul(w.At(col, c))))
			}
			rhs[r] = rhs[r].Sub(factor.Mul(rhs[col]))
		}
	}

	// Back substitution.
	x := make([]field.Element, n)
	for r := n - 1; r >= 0; r-- {
		acc := rhs[r]
		for c := r + 1; c < n; c++ {
			acc = acc.Sub(w.At(r, c).Mul(x[c]))
		}
		var err error
		if x[r], err = acc.Div(w.At(r, r)); err != nil {
			return nil, ErrSingular
		}
	}
	return x, nil
}

// Determinant returns the determinant of a square matrix. In
// characteristic 2 row swaps do not flip the sign, so the determinant is
// simply the product of the pivots after elimination.
func (m *Matrix) Determinant() (field.Element, error) {
	if m.rows != m.cols {
		return field.Element{}, fmt.Errorf("determinant of %dx%d: %w", m.rows, m.cols, ErrDimension)
	}

	n := m.rows
	w := m.clone()
	det := m.fd.One()

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !w.At(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return m.fd.Zero(), nil
		}
		if pivot != col {
			w.swapRows(pivot, col)
		}

		det = det.Mul(w.At(col, col))
		pivInv, _ := w.At(col, col).Inverse()
		for r := col + 1; r < n; r++ {
			if w.At(r, col).IsZero() {
				continue
			}
			factor := w.At(r, col).Mul(pivInv)
			for c := col; c < n; c++ {
				w.Set(r, c, w.At(r, c).Sub(factor.Mul(w.At(col, c))))
			}
		}
	}
	return det, nil
}

func (m *Matrix) swapRows(i, j int) {
	ri := m.a[i*m.cols : (i+1)*m.cols]
	rj := m.a[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
