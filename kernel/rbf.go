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

// Package kernel provides constructions of similarity (kernel)
// matrices from spatial coordinates.
package kernel

import (
	"math"

	"github.com/gopp-project/gopp/data"
	"github.com/gopp-project/gopp/internal"
)

// RBF calculates the radial basis function kernel matrix from a set
// of input points. Rows of r are the coordinates of the points, and
// sigma is the kernel bandwidth: entry (i, j) of the result equals
// exp(-d(i, j)^2 / (2 * sigma^2)), where d is the Euclidean distance.
//
// Points much further than sigma from each other lead to small
// entries of the kernel matrix, whereas points much closer than
// sigma generate large entries. The resulting matrix is symmetric,
// has 1s on the diagonal, all entries in (0, 1], and is positive
// semidefinite.
//
// It returns an error if sigma is not positive and finite, or if r
// is empty or has rows of unequal length.
func RBF(r data.Matrix, sigma float64) (data.Matrix, error) {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, internal.MalformedBandwidth
	}
	if r.Rows() == 0 || r.Cols() == 0 {
		return nil, internal.MalformedInput
	}
	if _, err := data.NewMatrix(r); err != nil {
		return nil, internal.MalformedInput
	}

	n := r.Rows()
	sq := make(data.Matrix, n)
	for i := 0; i < n; i++ {
		sq[i] = make(data.Vector, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := r[i].Distance(r[j])
			sq[i][j] = d * d
			sq[j][i] = sq[i][j]
		}
	}

	c := 2 * sigma * sigma

	return sq.Apply(func(v float64) float64 {
		return math.Exp(-v / c)
	}), nil
}
