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

// Package batch evaluates one agreement measure over many pairs of vectors
// concurrently.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/categorical-agreement/go/agreement"
	"github.com/google/categorical-agreement/go/checks"
	"golang.org/x/sync/errgroup"
)

// Pair is one comparison. Y is ignored by single-vector measures.
//
// The vectors are only read, so pairs may share backing arrays.
type Pair struct {
	X, Y []float64
}

// Options contains the options of a batch computation.
type Options struct {
	// Parameters of the measure.
	Measure agreement.Options
	// Maximum number of pairs evaluated at once. Defaults to GOMAXPROCS.
	Workers int
}

// Compute returns the measure of the given kind for every pair, in the same
// order as pairs. The first failing pair stops the remaining work; its error
// is returned together with its index.
//
// A nil opt is equivalent to &Options{}.
func Compute(ctx context.Context, kind agreement.Kind, pairs []Pair, opt *Options) ([]float64, error) {
	if opt == nil {
		opt = &Options{} // Prevents panicking due to a nil pointer dereference.
	}
	if err := checks.CheckWorkers(opt.Workers); err != nil {
		return nil, fmt.Errorf("batch.Compute: %w", err)
	}
	workers := opt.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]float64, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pairs {
		i, p := i, p // per-iteration copies for go < 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := agreement.Compute(kind, p.X, p.Y, &opt.Measure)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch.Compute: %w", err)
	}
	return results, nil
}
