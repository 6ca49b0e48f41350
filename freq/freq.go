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

// Package freq builds frequency tables over vectors of category codes.
//
// Category codes are float64 values matched with exact equality: no tolerance
// or binning is applied, so two codes differing only by rounding noise are two
// distinct categories. +0 and -0 compare equal and share one entry.
//
// Tables are built fresh from a fully materialized vector and are not meant
// to be updated afterwards.
package freq

import (
	"fmt"
	"sort"

	"github.com/google/categorical-agreement/go/checks"
)

// Table is a key-ordered frequency table: the distinct values of a vector in
// ascending order, each with its number of occurrences.
//
// The sum of all counts equals N().
type Table struct {
	values []float64
	counts []int64
	n      int64
}

// Count returns the frequency table of x. An empty x yields an empty table.
func Count(x []float64) *Table {
	m := make(map[float64]int64)
	for _, v := range x {
		m[v]++
	}
	return fromMap(m, int64(len(x)))
}

// CountMatches returns a table counting, for every value v, the positions i
// where x[i] == y[i] == v. N() of the returned table is len(x), so the sum of
// its counts is the number of exact positional matches and may be less than
// N().
func CountMatches(x, y []float64) (*Table, error) {
	if err := checks.CheckPairedLengths(x, y); err != nil {
		return nil, fmt.Errorf("CountMatches: %w", err)
	}
	m := make(map[float64]int64)
	for i, v := range x {
		if v == y[i] {
			m[v]++
		}
	}
	return fromMap(m, int64(len(x))), nil
}

func fromMap(m map[float64]int64, n int64) *Table {
	t := &Table{
		values: make([]float64, 0, len(m)),
		counts: make([]int64, len(m)),
		n:      n,
	}
	for v := range m {
		t.values = append(t.values, v)
	}
	sort.Float64s(t.values)
	for i, v := range t.values {
		t.counts[i] = m[v]
	}
	return t
}

// Len returns the number of distinct values in t.
func (t *Table) Len() int {
	return len(t.values)
}

// N returns the length of the vector t was built from.
func (t *Table) N() int64 {
	return t.n
}

// Value returns the i-th smallest distinct value.
func (t *Table) Value(i int) float64 {
	return t.values[i]
}

// Count returns the number of occurrences of Value(i).
func (t *Table) Count(i int) int64 {
	return t.counts[i]
}

// Total returns the sum of all counts.
func (t *Table) Total() int64 {
	var total int64
	for _, c := range t.counts {
		total += c
	}
	return total
}

// SumOfSquares returns Σ count².
func (t *Table) SumOfSquares() float64 {
	sum := 0.0
	for _, c := range t.counts {
		sum += float64(c) * float64(c)
	}
	return sum
}

// PairSum returns Σ C(count, 2), the number of unordered pairs of positions
// sharing a value.
func (t *Table) PairSum() float64 {
	return pairSum(t.counts)
}

func pairSum(counts []int64) float64 {
	sum := 0.0
	for _, c := range counts {
		sum += choose2(c)
	}
	return sum
}

// choose2 returns m·(m-1)/2.
func choose2(m int64) float64 {
	return float64(m) * (float64(m) - 1) / 2
}

// Intersect returns Σ count_a(v)·count_b(v) over the values v present in both
// tables.
//
// It walks both tables in key order at once, advancing the side with the
// smaller current key, which takes O(a.Len() + b.Len()) time.
func Intersect(a, b *Table) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.values) && j < len(b.values) {
		switch {
		case a.values[i] < b.values[j]:
			i++
		case b.values[j] < a.values[i]:
			j++
		default:
			sum += float64(a.counts[i]) * float64(b.counts[j])
			i++
			j++
		}
	}
	return sum
}
