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

	log "github.com/golang/glog"
)

// Kind is an enum type. Its values are the supported measures.
type Kind int

// Measures computed by this package.
const (
	GiniKind Kind = iota
	GiniCorrectedKind
	CFuncKind
	MeanSimilarityKind
	CohenKind
	AdjustedRandKind
	Unrecognised
)

var kindNames = map[Kind]string{
	GiniKind:           "gini",
	GiniCorrectedKind:  "ginicorr",
	CFuncKind:          "cfunc",
	MeanSimilarityKind: "meansfunc",
	CohenKind:          "cohen",
	AdjustedRandKind:   "adjrand",
}

// AllKinds lists every recognised measure, in declaration order.
var AllKinds = []Kind{GiniKind, GiniCorrectedKind, CFuncKind, MeanSimilarityKind, CohenKind, AdjustedRandKind}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unrecognised(%d)", int(k))
}

// ParseKind converts a measure name, as returned by Kind.String, into a Kind.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	log.Warningf("ParseKind: unknown measure %q specified, returning Unrecognised", name)
	return Unrecognised
}

// Paired reports whether the measure requires x and y to have the same
// length.
func (k Kind) Paired() bool {
	return k == MeanSimilarityKind || k.Positional()
}

// Positional reports whether the measure depends on which value of x is
// paired with which value of y. MeanSimilarity is paired but compares value
// distributions only, so it is not positional.
func (k Kind) Positional() bool {
	return k == CohenKind || k == AdjustedRandKind
}

// Options holds the scalar parameters of the measures that take them.
type Options struct {
	// Smoothing constant c of CFunc and MeanSimilarity. Must be nonnegative.
	Smoothing float64
	// Assumed number of categories k of GiniCorrected and CFunc. Defaults
	// to 1, i.e. no correction, when left at 0.
	Categories float64
}

// Compute evaluates the measure of the given kind. Single-vector measures
// (GiniKind, GiniCorrectedKind) only read x and ignore y.
//
// A nil opt is equivalent to &Options{}.
func Compute(kind Kind, x, y []float64, opt *Options) (float64, error) {
	if opt == nil {
		opt = &Options{} // Prevents panicking due to a nil pointer dereference.
	}
	k := opt.Categories
	if k == 0 {
		k = 1
	}
	switch kind {
	case GiniKind:
		return Gini(x)
	case GiniCorrectedKind:
		return GiniCorrected(x, k)
	case CFuncKind:
		return CFunc(x, y, opt.Smoothing, k)
	case MeanSimilarityKind:
		return MeanSimilarity(x, y, opt.Smoothing)
	case CohenKind:
		return Cohen(x, y)
	case AdjustedRandKind:
		return AdjustedRand(x, y)
	default:
		return 0, fmt.Errorf("Compute: unrecognised measure %v", kind)
	}
}
