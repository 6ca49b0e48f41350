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

// Cohen returns the chance-corrected agreement of two equal-length label
// vectors, (po - pe) / (1 - pe), where
//
//	po = #{i : x[i] == y[i]} / n
//	pe = Σᵥ countx(v)·county(v) / n²
//
// po is the observed agreement rate and pe the agreement expected if x and y
// were independent. When 1 - pe < ChanceTolerance the expected agreement is
// already total and Cohen returns exactly 1.
//
// x and y must have the same, nonzero length.
func Cohen(x, y []float64) (float64, error) {
	if err := checkPaired(x, y, 1); err != nil {
		return 0, fmt.Errorf("Cohen: %w", err)
	}
	matches, err := freq.CountMatches(x, y)
	if err != nil {
		return 0, fmt.Errorf("Cohen: %w", err)
	}
	n := float64(len(x))
	pe := freq.Intersect(freq.Count(x), freq.Count(y)) / (n * n)
	po := float64(matches.Total()) / n
	if 1-pe < ChanceTolerance {
		return 1, nil
	}
	return (po - pe) / (1 - pe), nil
}
