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

	"github.com/gopp-project/gopp/internal"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is a point process that selects every point independently
// with the same probability, chosen so that the mean number of
// selected points per draw equals nMean. It ignores any similarity
// structure between points and serves as a baseline for comparison
// with the Thermal process.
//
// A Uniform instance is safe for concurrent use.
type Uniform struct {
	n int
	p float64

	seed  uint64
	draws atomic.Uint64
}

// NewUniform returns an instance of the Uniform point process over
// numPoints points with target mean count nMean. The process is
// randomly seeded; use NewUniformSeeded for reproducible draws.
//
// It returns an error if numPoints < 1 or if nMean is not in
// (0, numPoints].
func NewUniform(numPoints int, nMean float64) (*Uniform, error) {
	return NewUniformSeeded(numPoints, nMean, rand.Uint64())
}

// NewUniformSeeded returns an instance of the Uniform point process
// whose draws are determined by seed.
func NewUniformSeeded(numPoints int, nMean float64, seed uint64) (*Uniform, error) {
	if numPoints < 1 {
		return nil, internal.MalformedInput
	}
	if nMean <= 0 || math.IsNaN(nMean) || nMean > float64(numPoints) {
		return nil, internal.MalformedMeanCount
	}

	return &Uniform{
		n:    numPoints,
		p:    nMean / float64(numPoints),
		seed: seed,
	}, nil
}

// Dim returns the number of points of the process, which is the
// dimension of every draw.
func (u *Uniform) Dim() int {
	return u.n
}

// NMean returns the target mean number of selected points per draw.
func (u *Uniform) NMean() float64 {
	return u.p * float64(u.n)
}

// Sample draws a single count vector from the point process.
func (u *Uniform) Sample() ([]int, error) {
	return u.draw(u.draws.Add(1) - 1), nil
}

// SampleN draws a batch of n independent count vectors.
// It returns an error if n < 1.
func (u *Uniform) SampleN(n int) ([][]int, error) {
	return drawBatch(n, &u.draws, u.draw)
}

func (u *Uniform) draw(idx uint64) []int {
	bern := distuv.Bernoulli{P: u.p, Src: rand.NewPCG(u.seed, idx)}

	counts := make([]int, u.n)
	for j := 0; j < u.n; j++ {
		counts[j] = int(bern.Rand())
	}

	return counts
}
