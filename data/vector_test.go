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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestVector(t *testing.T) {
	l := 3
	d := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(1, 1)}

	x := NewRandomVector(l, d)
	y := NewRandomVector(l, d)

	add := x.Add(y)
	sub := x.Sub(y)
	scaled := x.MulScalar(2.5)
	mul, err := x.Dot(y)
	if err != nil {
		t.Fatalf("Error during vector multiplication: %v", err)
	}

	innerProd := 0.0
	for i := 0; i < l; i++ {
		assert.InDelta(t, x[i]+y[i], add[i], 1e-12, "coordinates should sum correctly")
		assert.InDelta(t, x[i]-y[i], sub[i], 1e-12, "coordinates should subtract correctly")
		assert.InDelta(t, 2.5*x[i], scaled[i], 1e-12, "coordinates should scale correctly")
		innerProd += x[i] * y[i]
	}

	assert.InDelta(t, innerProd, mul, 1e-12, "inner product should calculate correctly")

	_, err = x.Dot(NewConstantVector(l+1, 0))
	assert.Error(t, err)
}

func TestVector_NormDistance(t *testing.T) {
	v := Vector{3, 4}
	assert.InDelta(t, 5.0, v.Norm(), 1e-12)

	w := Vector{0, 0}
	assert.InDelta(t, 5.0, v.Distance(w), 1e-12)
	assert.InDelta(t, 0.0, v.Distance(v), 1e-12)
}

func TestVector_Apply(t *testing.T) {
	v := Vector{0, 1, 2}
	e := v.Apply(math.Exp)

	for i := range v {
		assert.InDelta(t, math.Exp(v[i]), e[i], 1e-12)
	}
}

func TestVector_RandomDet(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	x := NewRandomDetVector(100, &key)
	y := NewRandomDetVector(100, &key)

	assert.Equal(t, x, y, "same key should generate the same vector")
	for _, c := range x {
		assert.True(t, c >= 0 && c < 1, "coordinates should be sampled from [0, 1)")
	}
}
