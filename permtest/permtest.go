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

// Package permtest estimates how surprising an observed agreement measure is
// under the null hypothesis that x and y are unrelated, by recomputing the
// measure on random permutations of y.
package permtest

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/google/categorical-agreement/go/agreement"
	"github.com/google/categorical-agreement/go/checks"
	"github.com/google/categorical-agreement/go/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultIterations is the number of permutations used when
// Options.Iterations is 0.
const DefaultIterations = 999

// Options contains the options of a permutation test.
type Options struct {
	// Parameters of the measure.
	Measure agreement.Options
	// Number of random permutations. Defaults to DefaultIterations.
	Iterations int
	// Number of goroutines drawing permutations. Defaults to GOMAXPROCS.
	Workers int
	// If non-zero, worker w draws from rand.NewSeeded(Seed + w) and the test
	// is reproducible for a fixed Workers. Otherwise permutations come from
	// the secure source.
	Seed int64
}

// Result holds the outcome of a permutation test.
type Result struct {
	// Measure on the unpermuted vectors.
	Observed float64
	// Mean and standard deviation of the measure over the permutations.
	NullMean, NullStdDev float64
	// (Observed - NullMean) / NullStdDev; 0 when NullStdDev is 0.
	ZScore float64
	// Fraction of permutations, counting the given pairing, whose measure
	// is at least Observed: (1 + #{null ≥ observed}) / (1 + Iterations).
	PValue float64
	// One-sided upper tail of the unit normal at ZScore.
	NormalPValue float64
	Iterations   int
}

// Test runs a permutation test of the measure kind on x and y. x is held
// fixed while y is shuffled; each worker shuffles its own copy of y, and the
// caller's slices are never modified.
//
// A nil opt is equivalent to &Options{}.
func Test(ctx context.Context, kind agreement.Kind, x, y []float64, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{} // Prevents panicking due to a nil pointer dereference.
	}
	if !kind.Positional() {
		return nil, fmt.Errorf("permtest.Test: measure %v does not depend on the pairing of x and y, permuting y cannot change it", kind)
	}
	iterations := opt.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if err := checks.CheckIterations(iterations); err != nil {
		return nil, fmt.Errorf("permtest.Test: %w", err)
	}
	if err := checks.CheckWorkers(opt.Workers); err != nil {
		return nil, fmt.Errorf("permtest.Test: %w", err)
	}
	workers := opt.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > iterations {
		workers = iterations
	}

	observed, err := agreement.Compute(kind, x, y, &opt.Measure)
	if err != nil {
		return nil, fmt.Errorf("permtest.Test: couldn't compute observed %v: %w", kind, err)
	}

	null := make([]float64, iterations)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy for go < 1.22
		g.Go(func() error {
			var src rand.Source = rand.Secure()
			if opt.Seed != 0 {
				src = rand.NewSeeded(opt.Seed + int64(w))
			}
			perm := append([]float64(nil), y...)
			// Worker w fills null[w], null[w+workers], ...
			for i := w; i < iterations; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				src.Shuffle(perm)
				v, err := agreement.Compute(kind, x, perm, &opt.Measure)
				if err != nil {
					return fmt.Errorf("permutation %d: %w", i, err)
				}
				null[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("permtest.Test: %w", err)
	}
	return summarize(observed, null), nil
}

func summarize(observed float64, null []float64) *Result {
	mean, stdDev := stat.MeanStdDev(null, nil)
	if math.IsNaN(stdDev) { // A single permutation has no spread.
		stdDev = 0
	}
	atLeast := 0
	for _, v := range null {
		if v >= observed {
			atLeast++
		}
	}
	z := 0.0
	if stdDev > 0 {
		z = (observed - mean) / stdDev
	}
	return &Result{
		Observed:     observed,
		NullMean:     mean,
		NullStdDev:   stdDev,
		ZScore:       z,
		PValue:       float64(1+atLeast) / float64(1+len(null)),
		NormalPValue: distuv.UnitNormal.Survival(z),
		Iterations:   len(null),
	}
}
