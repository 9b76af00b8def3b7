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
	"runtime"
	"sync/atomic"

	"github.com/gopp-project/gopp/internal"
	"golang.org/x/sync/errgroup"
)

// PointProcess draws random count vectors over a fixed set of
// points. The i-th entry of a draw records how many times point i
// was selected.
type PointProcess interface {
	Sample() ([]int, error)
	SampleN(n int) ([][]int, error)
}

// drawBatch reserves n consecutive draw indices from counter and
// fills a batch by fanning draws out over the available CPUs. Each
// draw is generated from a random stream derived from its index
// alone, so the batch content does not depend on the fan-out.
func drawBatch(n int, counter *atomic.Uint64, draw func(idx uint64) []int) ([][]int, error) {
	if n < 1 {
		return nil, internal.MalformedInput
	}

	base := counter.Add(uint64(n)) - uint64(n)
	batch := make([][]int, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				batch[i] = draw(base + uint64(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return batch, nil
}
