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

package sample_test

import (
	"math"
	"testing"

	"github.com/gopp-project/gopp/data"
	"github.com/gopp-project/gopp/kernel"
	"github.com/gopp-project/gopp/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// testKernel builds an RBF kernel over a deterministic random point
// set, so sampler tests run on realistic input.
func testKernel(t *testing.T, numPoints int) data.Matrix {
	t.Helper()

	var key [32]byte
	for i := range key {
		key[i] = byte(i * 13)
	}
	r := data.NewRandomDetMatrix(numPoints, 2, &key)

	k, err := kernel.RBF(r, 1.0)
	require.NoError(t, err)

	return k
}

func meanTotal(batch [][]int) float64 {
	totals := make([]float64, len(batch))
	for i, s := range batch {
		for _, c := range s {
			totals[i] += float64(c)
		}
	}

	return stat.Mean(totals, nil)
}

func TestThermal_BatchShape(t *testing.T) {
	k := testKernel(t, 10)

	p, err := sample.NewThermal(k, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Dim())
	assert.Equal(t, 2.0, p.NMean())

	batch, err := p.SampleN(100)
	require.NoError(t, err)
	assert.Equal(t, 100, len(batch))

	for _, s := range batch {
		assert.Equal(t, p.Dim(), len(s))
		for _, c := range s {
			assert.True(t, c >= 0, "counts should be non-negative")
		}
	}
}

func TestThermal_MeanCount(t *testing.T) {
	k := testKernel(t, 20)

	p, err := sample.NewThermalSeeded(k, 2.0, 7)
	require.NoError(t, err)

	batch, err := p.SampleN(5000)
	require.NoError(t, err)

	m := meanTotal(batch)
	assert.True(t, m > 1.7, "mean total count is too small")
	assert.True(t, m < 2.3, "mean total count is too big")
}

func TestThermal_MeanCountMonotone(t *testing.T) {
	k := testKernel(t, 20)

	means := make([]float64, 0, 3)
	for _, nMean := range []float64{1.0, 3.0, 6.0} {
		p, err := sample.NewThermalSeeded(k, nMean, 11)
		require.NoError(t, err)

		batch, err := p.SampleN(5000)
		require.NoError(t, err)
		means = append(means, meanTotal(batch))
	}

	assert.True(t, means[0] < means[1], "mean total count should grow with the mean count parameter")
	assert.True(t, means[1] < means[2], "mean total count should grow with the mean count parameter")
}

func TestThermal_Deterministic(t *testing.T) {
	k := testKernel(t, 8)

	p1, err := sample.NewThermalSeeded(k, 1.5, 101)
	require.NoError(t, err)
	p2, err := sample.NewThermalSeeded(k, 1.5, 101)
	require.NoError(t, err)

	b1, err := p1.SampleN(50)
	require.NoError(t, err)
	b2, err := p2.SampleN(50)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "same seed should generate the same batch")

	s1, err := p1.Sample()
	require.NoError(t, err)
	s2, err := p2.Sample()
	require.NoError(t, err)
	assert.Equal(t, s1, s2, "same seed should generate the same draw sequence")

	p3, err := sample.NewThermalSeeded(k, 1.5, 102)
	require.NoError(t, err)
	b3, err := p3.SampleN(50)
	require.NoError(t, err)
	assert.NotEqual(t, b1, b3, "different seeds should generate different batches")
}

func TestThermal_InvalidKernel(t *testing.T) {
	nonSquare := data.NewConstantMatrix(2, 3, 0.5)
	_, err := sample.NewThermal(nonSquare, 1.0)
	assert.Error(t, err)

	asym := data.Matrix{
		{1, 0.9},
		{0.1, 1},
	}
	_, err = sample.NewThermal(asym, 1.0)
	assert.Error(t, err)

	// eigenvalues 3 and -1
	notPSD := data.Matrix{
		{1, 2},
		{2, 1},
	}
	_, err = sample.NewThermal(notPSD, 1.0)
	assert.Error(t, err)

	zero := data.NewConstantMatrix(3, 3, 0)
	_, err = sample.NewThermal(zero, 1.0)
	assert.Error(t, err, "kernel without positive eigenvalues cannot reach a positive mean count")
}

func TestThermal_InvalidMeanCount(t *testing.T) {
	k := testKernel(t, 4)

	for _, nMean := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := sample.NewThermal(k, nMean)
		assert.Error(t, err)
	}
}

func TestThermal_InvalidBatchSize(t *testing.T) {
	k := testKernel(t, 4)

	p, err := sample.NewThermal(k, 1.0)
	require.NoError(t, err)

	_, err = p.SampleN(0)
	assert.Error(t, err)
	_, err = p.SampleN(-5)
	assert.Error(t, err)
}
