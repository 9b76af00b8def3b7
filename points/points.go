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

// Package points provides functions for building kernel matrices
// from point coordinates and generating random point subsets from
// the permanental point process those kernels define.
//
// The two functions chain naturally: RBFKernel builds a similarity
// matrix from coordinates, and Sample draws batches of point-count
// vectors from it.
package points

import (
	"github.com/gopp-project/gopp/data"
	"github.com/gopp-project/gopp/kernel"
	"github.com/gopp-project/gopp/sample"
	"github.com/pkg/errors"
)

// RBFKernel calculates the radial basis function kernel matrix from
// a set of input points. Rows of r are the coordinates of the
// points, and sigma is the kernel bandwidth.
func RBFKernel(r data.Matrix, sigma float64) (data.Matrix, error) {
	return kernel.RBF(r, sigma)
}

// Sample draws nSamples subsets of points using the permanental
// point process defined by the positive semidefinite kernel matrix
// k. Each draw is a count vector of length k.Rows() whose mean total
// over many draws approaches nMean.
//
// In case of an invalid kernel or mean count it returns an error.
func Sample(k data.Matrix, nMean float64, nSamples int) ([][]int, error) {
	p, err := sample.NewThermal(k, nMean)
	if err != nil {
		return nil, errors.Wrap(err, "cannot construct point process")
	}

	return p.SampleN(nSamples)
}
