//
// Copyright 2023 Google LLC
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

// Package stattestutils provides basic statistical utility functions and
// straightforward reference implementations of the agreement measures.
//
// This package is not optimized for performance or speed and is only intended
// to be used in tests.
package stattestutils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SampleMean returns the mean of a slice, calculated as the average over the
// values in the slice.
func SampleMean(values []float64) float64 {
	var sum float64 = 0.0
	for _, v := range values {
		sum += v
	}
	return sum / math.Max(1, float64(len(values)))
}

// SampleVariance returns the variance of a slice, calculated as the sum of
// squares of the distance to the mean of each of the values, divided by the
// number of values.
func SampleVariance(values []float64) float64 {
	mean := SampleMean(values)
	var sumOfSquares float64 = 0.0
	for _, v := range values {
		sumOfSquares += math.Pow(v-mean, 2)
	}
	return sumOfSquares / math.Max(1, float64(len(values)))
}

// NaiveGini returns the Gini impurity of x as the probability that two values
// drawn with replacement from x differ, comparing every pair of positions.
func NaiveGini(x []float64) float64 {
	n := float64(len(x))
	differing := 0.0
	for _, a := range x {
		for _, b := range x {
			if a != b {
				differing++
			}
		}
	}
	return differing / (n * n)
}

// distinct returns the distinct values of x in order of first appearance and
// the index of every value of x within them.
func distinct(x []float64) ([]float64, []int) {
	var values []float64
	index := make([]int, len(x))
	for i, v := range x {
		found := -1
		for j, u := range values {
			if u == v {
				found = j
				break
			}
		}
		if found < 0 {
			values = append(values, v)
			found = len(values) - 1
		}
		index[i] = found
	}
	return values, index
}

// ContingencyMatrix returns the full contingency table of two equal-length
// label vectors: rows are the distinct values of x, columns the distinct
// values of y, both in order of first appearance.
func ContingencyMatrix(x, y []float64) *mat.Dense {
	xValues, xIndex := distinct(x)
	yValues, yIndex := distinct(y)
	m := mat.NewDense(len(xValues), len(yValues), nil)
	for i := range x {
		m.Set(xIndex[i], yIndex[i], m.At(xIndex[i], yIndex[i])+1)
	}
	return m
}

func choose2(m float64) float64 {
	return m * (m - 1) / 2
}

// NaiveAdjustedRand returns the Adjusted Rand Index of x and y computed from
// the row sums, column sums and cells of their full contingency matrix, with
// eps added to both the numerator and the denominator.
func NaiveAdjustedRand(x, y []float64, eps float64) float64 {
	m := ContingencyMatrix(x, y)
	rows, cols := m.Dims()
	var a, b, nij float64
	for i := 0; i < rows; i++ {
		a += choose2(mat.Sum(m.RowView(i)))
	}
	for j := 0; j < cols; j++ {
		b += choose2(mat.Sum(m.ColView(j)))
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			nij += choose2(m.At(i, j))
		}
	}
	total := choose2(float64(len(x)))
	expected := a * b / total
	return (nij - expected + eps) / ((a+b)/2 - expected + eps)
}

// NaiveCohen returns Cohen's kappa of x and y computed from their confusion
// matrix over the union of their values.
func NaiveCohen(x, y []float64) float64 {
	union, _ := distinct(append(append([]float64{}, x...), y...))
	k := len(union)
	indexOf := func(v float64) int {
		for i, u := range union {
			if u == v {
				return i
			}
		}
		return -1
	}
	m := mat.NewDense(k, k, nil)
	for i := range x {
		r, c := indexOf(x[i]), indexOf(y[i])
		m.Set(r, c, m.At(r, c)+1)
	}
	n := float64(len(x))
	po := 0.0
	pe := 0.0
	for i := 0; i < k; i++ {
		po += m.At(i, i) / n
		pe += mat.Sum(m.RowView(i)) * mat.Sum(m.ColView(i)) / (n * n)
	}
	if 1-pe < 1e-6 {
		return 1
	}
	return (po - pe) / (1 - pe)
}
