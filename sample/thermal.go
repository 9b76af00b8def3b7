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

package sample

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/gopp-project/gopp/data"
	"github.com/gopp-project/gopp/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Tolerances for accepting a kernel matrix, matching the defaults of
// the numerical libraries the sampler was validated against.
const (
	symTol = 1e-8
	psdTol = 1e-8
)

// Thermal is a permanental point process. Subsets of points are
// sampled with probabilities proportional to the permanent of the
// submatrix of a positive semidefinite kernel matrix selected by
// those points, which makes clustered points likely to be selected
// together. Draws are realized classically by sampling thermal
// states of the rescaled kernel.
//
// A Thermal instance is safe for concurrent use.
type Thermal struct {
	n     int
	nMean float64
	// rescaled kernel eigenvalues, all in [0, 1)
	evals []float64
	// orthonormal eigenvectors of the kernel, stored as columns
	basis *mat.Dense

	seed  uint64
	draws atomic.Uint64
}

// NewThermal returns an instance of the Thermal point process for
// the given kernel matrix k and target mean number of selected
// points per draw nMean. The process is randomly seeded; use
// NewThermalSeeded for reproducible draws.
//
// It returns an error if k is not square, symmetric and positive
// semidefinite, or if nMean is not positive and finite.
func NewThermal(k data.Matrix, nMean float64) (*Thermal, error) {
	return NewThermalSeeded(k, nMean, rand.Uint64())
}

// NewThermalSeeded returns an instance of the Thermal point process
// whose draws are determined by seed: two instances constructed with
// the same kernel, mean count and seed generate identical sequences
// of draws.
func NewThermalSeeded(k data.Matrix, nMean float64, seed uint64) (*Thermal, error) {
	if nMean <= 0 || math.IsNaN(nMean) || math.IsInf(nMean, 0) {
		return nil, internal.MalformedMeanCount
	}

	sym, err := k.Symmetric(symTol)
	if err != nil {
		return nil, errors.Wrap(internal.MalformedKernel, err.Error())
	}

	evals, basis, err := rescale(sym, nMean)
	if err != nil {
		return nil, err
	}

	return &Thermal{
		n:     k.Rows(),
		nMean: nMean,
		evals: evals,
		basis: basis,
		seed:  seed,
	}, nil
}

// rescale eigendecomposes the kernel and scales its eigenvalues so
// that the expected total count of a thermal draw equals nMean. The
// scaling x solves sum_i x*l_i / (1 - x*l_i) = nMean, which is
// monotone in x on [0, 1/max(l)).
func rescale(sym *mat.SymDense, nMean float64) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, nil, errors.Wrap(internal.MalformedKernel, "eigendecomposition failed")
	}

	ls := es.Values(nil)
	if ls[0] < -psdTol {
		return nil, nil, errors.Wrap(internal.MalformedKernel, "matrix is not positive semidefinite")
	}
	for i, l := range ls {
		if l < 0 {
			ls[i] = 0
		}
	}

	lMax := ls[len(ls)-1]
	if lMax <= 0 {
		return nil, nil, errors.Wrap(internal.MalformedKernel, "matrix has no positive eigenvalue")
	}

	hi := (1 - 1e-10) / lMax
	meanAt := func(x float64) float64 {
		s := 0.0
		for _, l := range ls {
			s += x * l / (1 - x*l)
		}
		return s - nMean
	}
	x, err := internal.Bisect(meanAt, 0, hi, 1e-15*hi, 200)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot rescale kernel matrix")
	}

	for i := range ls {
		ls[i] *= x
	}

	var basis mat.Dense
	es.VectorsTo(&basis)

	return ls, &basis, nil
}

// Dim returns the number of points of the process, which is the
// dimension of every draw.
func (t *Thermal) Dim() int {
	return t.n
}

// NMean returns the target mean number of selected points per draw.
func (t *Thermal) NMean() float64 {
	return t.nMean
}

// Sample draws a single count vector from the point process.
func (t *Thermal) Sample() ([]int, error) {
	return t.draw(t.draws.Add(1) - 1), nil
}

// SampleN draws a batch of n independent count vectors. Draws are
// generated in parallel; for a fixed seed the returned batch is
// deterministic regardless of the degree of parallelism.
// It returns an error if n < 1.
func (t *Thermal) SampleN(n int) ([][]int, error) {
	return drawBatch(n, &t.draws, t.draw)
}

// draw realizes one thermal sample: every eigenmode receives a
// complex normal displacement with mean photon number l/(1-l), the
// displacements are rotated into the point basis, and each point
// count is Poisson distributed around the squared magnitude of its
// displacement.
func (t *Thermal) draw(idx uint64) []int {
	src := rand.NewPCG(t.seed, idx)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	re := make([]float64, t.n)
	im := make([]float64, t.n)
	for i, l := range t.evals {
		if l == 0 {
			continue
		}
		s := math.Sqrt(l / (1 - l) / 2)
		re[i] = s * normal.Rand()
		im[i] = s * normal.Rand()
	}

	var bRe, bIm mat.VecDense
	bRe.MulVec(t.basis, mat.NewVecDense(t.n, re))
	bIm.MulVec(t.basis, mat.NewVecDense(t.n, im))

	counts := make([]int, t.n)
	for j := 0; j < t.n; j++ {
		lambda := bRe.AtVec(j)*bRe.AtVec(j) + bIm.AtVec(j)*bIm.AtVec(j)
		if lambda == 0 {
			continue
		}
		counts[j] = int(distuv.Poisson{Lambda: lambda, Src: src}.Rand())
	}

	return counts
}
