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

// Package checks contains input checks for the categorical agreement measures.
//
// Every error returned by this package wraps either ErrLengthMismatch or
// ErrDegenerateInput, so callers can distinguish the two failure kinds with
// errors.Is.
package checks

import (
	"errors"
	"fmt"
	"math"

	log "github.com/golang/glog"
)

var (
	// ErrLengthMismatch is wrapped by errors reporting that two positionally
	// paired vectors have different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrDegenerateInput is wrapped by errors reporting inputs for which a
	// measure is undefined, e.g. an empty vector or k = 0.
	ErrDegenerateInput = errors.New("degenerate input")
)

const (
	vectorName     = "x"
	categoriesName = "Categories"
	smoothingName  = "Smoothing"
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("This should never happen. There should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

// CheckPairedLengths returns an error if x and y have different lengths.
func CheckPairedLengths(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has length %d and y has length %d, they must have the same length: %w", len(x), len(y), ErrLengthMismatch)
	}
	return nil
}

// CheckVectorLength returns an error if x holds fewer than minLength values.
func CheckVectorLength(x []float64, minLength int, name ...string) error {
	vecName, err := verifyName(vectorName, name)
	if err != nil {
		return err
	}
	if len(x) < minLength {
		return fmt.Errorf("%s has length %d, must be at least %d: %w", vecName, len(x), minLength, ErrDegenerateInput)
	}
	return nil
}

// CheckNoNaN returns an error if x contains a NaN. NaN never compares equal to
// itself, so it cannot serve as a category code.
func CheckNoNaN(x []float64, name ...string) error {
	vecName, err := verifyName(vectorName, name)
	if err != nil {
		return err
	}
	for i, v := range x {
		if math.IsNaN(v) {
			return fmt.Errorf("%s[%d] is NaN, category codes must be comparable: %w", vecName, i, ErrDegenerateInput)
		}
	}
	return nil
}

// CheckCategories returns an error if the category count k is 0, NaN or ±∞.
//
// Values of k strictly between 0 and 1 are accepted even though they flip the
// sign of the correction factor; a warning is logged.
func CheckCategories(k float64, name ...string) error {
	kName, err := verifyName(categoriesName, name)
	if err != nil {
		return err
	}
	if k == 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%s is %f, must be nonzero and finite: %w", kName, k, ErrDegenerateInput)
	}
	if k > 0 && k < 1 {
		log.Warningf("%s is %f: the correction factor 1-1/k is negative", kName, k)
	}
	return nil
}

// CheckSmoothing returns an error if the smoothing constant c is negative, NaN
// or ±∞.
func CheckSmoothing(c float64, name ...string) error {
	cName, err := verifyName(smoothingName, name)
	if err != nil {
		return err
	}
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("%s is %f, must be nonnegative and finite: %w", cName, c, ErrDegenerateInput)
	}
	if c == 0 {
		log.Warningf("%s is 0: inputs with zero impurity on both sides will produce NaN", cName)
	}
	return nil
}

// CheckIterations returns an error if iterations is nonpositive.
func CheckIterations(iterations int) error {
	if iterations <= 0 {
		return fmt.Errorf("Iterations is %d, must be strictly positive: %w", iterations, ErrDegenerateInput)
	}
	return nil
}

// CheckWorkers returns an error if workers is negative. Zero means "use the
// default".
func CheckWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("Workers is %d, must be nonnegative: %w", workers, ErrDegenerateInput)
	}
	return nil
}
