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

	"github.com/google/categorical-agreement/go/freq"
)

// AdjustedRand returns the Adjusted Rand Index of the two partitions of n
// items given by the label vectors x and y.
//
// With a = Σ C(countx, 2), b = Σ C(county, 2), nij = Σ C(count(x[i], y[i]), 2)
// and T = C(n, 2), the result is
//
//	(nij - a·b/T + ε) / ((a + b)/2 - a·b/T + ε)
//
// with ε = RandSmoothing. The smoothing keeps the index defined for
// partitions with no same-label pairs or a single label, where the unsmoothed
// ratio is 0/0; for identical partitions the result is exactly 1.
//
// nij is computed from the non-empty cells of the contingency table only.
//
// x and y must have the same length, at least 2.
func AdjustedRand(x, y []float64) (float64, error) {
	if err := checkPaired(x, y, 2); err != nil {
		return 0, fmt.Errorf("AdjustedRand: %w", err)
	}
	joint, err := freq.CountPairs(x, y)
	if err != nil {
		return 0, fmt.Errorf("AdjustedRand: %w", err)
	}
	ai := freq.Count(x).PairSum()
	bi := freq.Count(y).PairSum()
	nij := joint.PairSum()

	n := float64(len(x))
	totalPairs := n * (n - 1) / 2
	expected := ai * bi / totalPairs
	return (nij - expected + RandSmoothing) / (0.5*(ai+bi) - expected + RandSmoothing), nil
}
