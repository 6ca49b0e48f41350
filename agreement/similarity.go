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

package agreement

import (
	"fmt"
	"math"

	"github.com/google/categorical-agreement/go/checks"
	"github.com/google/categorical-agreement/go/freq"
)

// CFunc returns the symmetric similarity of the corrected Gini indices of x
// and y:
//
//	(2·√(varx·vary) + c) / (varx + vary + c)
//
// where varx = GiniCorrected(x, k) and vary = GiniCorrected(y, k). The result
// approaches 1 when varx ≈ vary and 0 as they diverge. The smoothing constant
// c keeps the ratio defined when both indices are zero.
//
// x and y are not paired and may have different lengths.
func CFunc(x, y []float64, c, k float64) (float64, error) {
	if err := checks.CheckSmoothing(c); err != nil {
		return 0, fmt.Errorf("CFunc: %w", err)
	}
	varx, err := GiniCorrected(x, k)
	if err != nil {
		return 0, fmt.Errorf("CFunc: x: %w", err)
	}
	vary, err := GiniCorrected(y, k)
	if err != nil {
		return 0, fmt.Errorf("CFunc: y: %w", err)
	}
	denominator := varx + vary + c
	if denominator == 0 {
		return 0, fmt.Errorf("CFunc: both Gini indices and the smoothing constant are 0: %w", ErrDegenerateInput)
	}
	return (2*math.Sqrt(varx*vary) + c) / denominator, nil
}

// MeanSimilarity returns a Dice-style overlap of the value distributions of x
// and y:
//
//	(2·Σᵥ countx(v)·county(v) + c) / (Σ countx² + Σ county² + c)
//
// This compares distributions, not positions: permuting x or y leaves the
// result unchanged. MeanSimilarity(x, x, c) is 1 for any c ≥ 0.
//
// x and y must have the same, nonzero length.
func MeanSimilarity(x, y []float64, c float64) (float64, error) {
	if err := checkPaired(x, y, 1); err != nil {
		return 0, fmt.Errorf("MeanSimilarity: %w", err)
	}
	if err := checks.CheckSmoothing(c); err != nil {
		return 0, fmt.Errorf("MeanSimilarity: %w", err)
	}
	tx, ty := freq.Count(x), freq.Count(y)
	sqsum := tx.SumOfSquares() + ty.SumOfSquares()
	xysum := freq.Intersect(tx, ty)
	return (2*xysum + c) / (sqsum + c), nil
}
