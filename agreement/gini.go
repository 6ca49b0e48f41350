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

// Gini returns the Gini impurity of x, 1 - Σ pᵢ², where pᵢ is the proportion
// of the i-th distinct value of x.
//
// The result lies in [0, 1) and is 0 iff all values of x are equal. x must
// hold at least one value.
func Gini(x []float64) (float64, error) {
	if err := checkVector(x, 1, "x"); err != nil {
		return 0, fmt.Errorf("Gini: %w", err)
	}
	return gini(freq.Count(x)), nil
}

func gini(t *freq.Table) float64 {
	n := float64(t.N())
	return 1 - t.SumOfSquares()/(n*n)
}

// GiniCorrected returns the Gini impurity of x divided by the finite-alphabet
// correction factor 1 - 1/k, where k is the assumed number of categories.
//
// When |k - 1| < KOneTolerance no correction is applied and the result equals
// Gini(x). k is not checked against the number of distinct values of x.
func GiniCorrected(x []float64, k float64) (float64, error) {
	if err := checks.CheckCategories(k); err != nil {
		return 0, fmt.Errorf("GiniCorrected: %w", err)
	}
	g, err := Gini(x)
	if err != nil {
		return 0, fmt.Errorf("GiniCorrected: %w", err)
	}
	return correct(g, k), nil
}

func correct(g, k float64) float64 {
	if math.Abs(k-1) < KOneTolerance {
		return g
	}
	return g / (1 - 1/k)
}
