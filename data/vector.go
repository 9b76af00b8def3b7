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
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/salsa20"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Vector wraps a slice of float64 elements. It represents the
// coordinates of a point, or a row of a Matrix.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled from the provided
// probability distribution.
func NewRandomVector(len int, d distuv.Rander) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = d.Rand()
	}

	return NewVector(vec)
}

// NewRandomDetVector returns a new Vector instance
// with (deterministic) random elements sampled by a pseudo-random
// number generator. Elements are sampled uniformly from [0, 1) and
// key determines the pseudo-random generator.
func NewRandomDetVector(len int, key *[32]byte) Vector {
	in := make([]byte, 8*len) // input is initialized to zeros
	out := make([]byte, 8*len)
	nonce := make([]byte, 8) // nonce is initialized to zeros

	salsa20.XORKeyStream(out, in, nonce, key)

	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		u := binary.LittleEndian.Uint64(out[8*i:]) >> 11
		vec[i] = float64(u) / (1 << 53)
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := v.Copy()
	floats.Add(sum, other)

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := v.Copy()
	floats.Sub(sub, other)

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of the same length")
	}

	return floats.Dot(v, other), nil
}

// Norm returns the Euclidean norm of vector v.
func (v Vector) Norm() float64 {
	return math.Sqrt(floats.Dot(v, v))
}

// Distance returns the Euclidean distance between vectors v and other.
// Vectors are assumed to be of the same length (caller's responsibility).
func (v Vector) Distance(other Vector) float64 {
	return floats.Distance(v, other, 2)
}
