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

// Package sample includes point processes for sampling random
// subsets of points.
//
// Package sample provides the PointProcess interface along with
// different implementations of this interface. A point process draws
// integer count vectors over a fixed set of points; each draw records
// how many times every point was selected.
//
// The Thermal point process selects subsets with probabilities
// proportional to the permanent of the corresponding kernel
// submatrix, so points that are similar under the kernel tend to be
// selected together. The Uniform point process selects every point
// independently and serves as a baseline.
package sample
