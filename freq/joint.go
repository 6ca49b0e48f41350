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

package freq

import (
	"fmt"

	"github.com/google/categorical-agreement/go/checks"
)

// Pair is a positional pair of values (x[i], y[i]).
type Pair struct {
	X, Y float64
}

// JointTable counts the occurrences of each positional pair (x[i], y[i]) of
// two equal-length vectors. It holds the non-empty cells of the contingency
// table of x and y without materializing the full matrix.
//
// The sum of all counts equals N().
type JointTable struct {
	cells map[Pair]int64
	n     int64
}

// CountPairs returns the joint frequency table of x and y.
func CountPairs(x, y []float64) (*JointTable, error) {
	if err := checks.CheckPairedLengths(x, y); err != nil {
		return nil, fmt.Errorf("CountPairs: %w", err)
	}
	cells := make(map[Pair]int64)
	for i, v := range x {
		cells[Pair{X: v, Y: y[i]}]++
	}
	return &JointTable{cells: cells, n: int64(len(x))}, nil
}

// Len returns the number of distinct pairs.
func (jt *JointTable) Len() int {
	return len(jt.cells)
}

// N returns the length of the vectors jt was built from.
func (jt *JointTable) N() int64 {
	return jt.n
}

// Count returns the number of positions holding pair p.
func (jt *JointTable) Count(p Pair) int64 {
	return jt.cells[p]
}

// PairSum returns Σ C(count, 2) over all cells: the number of unordered
// pairs of positions that share a value in both x and y.
func (jt *JointTable) PairSum() float64 {
	sum := 0.0
	for _, c := range jt.cells {
		sum += choose2(c)
	}
	return sum
}
