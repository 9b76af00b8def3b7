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
	"testing"

	"github.com/gopp-project/gopp/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointProcess(t *testing.T) {
	k := testKernel(t, 6)

	thermal, err := sample.NewThermalSeeded(k, 1.0, 3)
	require.NoError(t, err)
	uniform, err := sample.NewUniformSeeded(6, 1.0, 3)
	require.NoError(t, err)

	for _, p := range []sample.PointProcess{thermal, uniform} {
		s, err := p.Sample()
		require.NoError(t, err)
		assert.Equal(t, 6, len(s))

		batch, err := p.SampleN(10)
		require.NoError(t, err)
		assert.Equal(t, 10, len(batch))
		for _, s := range batch {
			assert.Equal(t, 6, len(s))
		}
	}
}
