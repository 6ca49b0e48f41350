//
// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package agreement computes impurity and agreement measures over vectors of
// category codes: Gini impurity, a finite-alphabet corrected Gini index, a
// symmetric similarity of two corrected Gini indices, a Dice-style overlap of
// two value distributions, a Cohen-style chance-corrected agreement
// coefficient and the Adjusted Rand Index of two partitions.
//
// Category codes are float64 values compared with exact equality (see package
// freq). All functions are pure: they read their inputs, build transient
// frequency tables and return one scalar, so any number of calls may run in
// parallel.
//
// Inputs for which a measure is undefined are reported as errors wrapping
// ErrDegenerateInput rather than propagated as NaN or ±∞. Vectors that must be
// positionally paired but differ in length yield errors wrapping
// ErrLengthMismatch.
package agreement

import "github.com/google/categorical-agreement/go/checks"

var (
	// ErrLengthMismatch is wrapped by errors reporting that two positionally
	// paired vectors have different lengths.
	ErrLengthMismatch = checks.ErrLengthMismatch
	// ErrDegenerateInput is wrapped by errors reporting inputs for which a
	// measure is undefined.
	ErrDegenerateInput = checks.ErrDegenerateInput
)

const (
	// KOneTolerance is the absolute distance from 1 within which the category
	// count k is treated as exactly 1, i.e. no correction is applied.
	KOneTolerance = 1e-5
	// ChanceTolerance is the threshold below which 1 - pe is considered zero
	// in Cohen, which then reports perfect agreement.
	ChanceTolerance = 1e-6
	// RandSmoothing is added to both the numerator and the denominator of the
	// Adjusted Rand Index.
	RandSmoothing = 1e-3
)

// checkVector checks that x is long enough and free of NaN.
func checkVector(x []float64, minLength int, name string) error {
	if err := checks.CheckVectorLength(x, minLength, name); err != nil {
		return err
	}
	return checks.CheckNoNaN(x, name)
}

// checkPaired checks that x and y have the same length, at least minLength,
// and hold no NaN.
func checkPaired(x, y []float64, minLength int) error {
	if err := checks.CheckPairedLengths(x, y); err != nil {
		return err
	}
	if err := checkVector(x, minLength, "x"); err != nil {
		return err
	}
	return checkVector(y, minLength, "y")
}
