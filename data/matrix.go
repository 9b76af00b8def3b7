/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled from the provided
// probability distribution.
func NewRandomMatrix(rows, cols int, d distuv.Rander) Matrix {
	m := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		m[i] = NewRandomVector(cols, d)
	}

	return Matrix(m)
}

// NewRandomDetMatrix returns a new Matrix instance
// with (deterministic) random elements sampled by a pseudo-random
// number generator. Elements are sampled uniformly from [0, 1) and
// key determines the pseudo-random generator.
func NewRandomDetMatrix(rows, cols int, key *[32]byte) Matrix {
	v := NewRandomDetVector(rows*cols, key)

	m := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		m[i] = NewVector(v[(i * cols):((i + 1) * cols)])
	}

	return Matrix(m)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	m := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		m[i] = NewConstantVector(cols, c)
	}

	return m
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// IsSquare returns a bool indicating whether matrix m
// has the same number of rows and columns.
func (m Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]float64, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Copy creates a new matrix with the same values
// of the entries.
func (m Matrix) Copy() Matrix {
	vectors := make([]Vector, m.Rows())
	for i, v := range m {
		vectors[i] = v.Copy()
	}

	return Matrix(vectors)
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(float64) float64) Matrix {
	res := make(Matrix, len(m))

	for i, vi := range m {
		res[i] = vi.Apply(f)
	}

	return res
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vectors := make([]Vector, m.Rows())
	for i, v := range m {
		vectors[i] = v.Add(other[i])
	}

	return NewMatrix(vectors)
}

// Sub subtracts matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vecs := make([]Vector, m.Rows())
	for i, v := range m {
		vecs[i] = v.Sub(other[i])
	}

	return NewMatrix(vecs)
}

// Symmetric converts matrix m into a gonum symmetric matrix.
// Entries that differ across the diagonal by at most tol are averaged.
// It returns an error if m is not square, contains NaN entries, or
// violates symmetry beyond tol.
func (m Matrix) Symmetric(tol float64) (*mat.SymDense, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("matrix is not square")
	}

	n := m.Rows()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if math.IsNaN(m[i][j]) || math.IsNaN(m[j][i]) {
				return nil, fmt.Errorf("matrix contains NaN entries")
			}
			if math.Abs(m[i][j]-m[j][i]) > tol {
				return nil, fmt.Errorf("matrix is not symmetric")
			}
			s.SetSym(i, j, (m[i][j]+m[j][i])/2)
		}
	}

	return s, nil
}
