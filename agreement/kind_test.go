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
	"testing"
)

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range AllKinds {
		if got := ParseKind(k.String()); got != k {
			t.Errorf("ParseKind(%q): got %v, want %v", k.String(), got, k)
		}
	}
	if got := ParseKind("jaccard"); got != Unrecognised {
		t.Errorf("ParseKind(%q): got %v, want Unrecognised", "jaccard", got)
	}
}

func TestCompute(t *testing.T) {
	x := []float64{1, 1, 2, 2, 3, 3}
	y := []float64{1, 2, 1, 2, 3, 3}
	opt := &Options{Smoothing: 0.1, Categories: 3}
	for _, tc := range []struct {
		kind Kind
		want func() (float64, error)
	}{
		{GiniKind, func() (float64, error) { return Gini(x) }},
		{GiniCorrectedKind, func() (float64, error) { return GiniCorrected(x, 3) }},
		{CFuncKind, func() (float64, error) { return CFunc(x, y, 0.1, 3) }},
		{MeanSimilarityKind, func() (float64, error) { return MeanSimilarity(x, y, 0.1) }},
		{CohenKind, func() (float64, error) { return Cohen(x, y) }},
		{AdjustedRandKind, func() (float64, error) { return AdjustedRand(x, y) }},
	} {
		got, err := Compute(tc.kind, x, y, opt)
		if err != nil {
			t.Fatalf("Compute(%v): got err %v", tc.kind, err)
		}
		want, err := tc.want()
		if err != nil {
			t.Fatalf("%v: got err %v", tc.kind, err)
		}
		if got != want {
			t.Errorf("Compute(%v): got %f, want %f", tc.kind, got, want)
		}
	}
}

func TestComputeDefaults(t *testing.T) {
	x := []float64{1, 2, 2, 3}
	got, err := Compute(GiniCorrectedKind, x, nil, nil)
	if err != nil {
		t.Fatalf("Compute: got err %v", err)
	}
	want, _ := Gini(x)
	if got != want {
		t.Errorf("Compute(GiniCorrectedKind) with nil options: got %f, want uncorrected %f", got, want)
	}
	if _, err := Compute(Unrecognised, x, x, nil); err == nil {
		t.Errorf("Compute(Unrecognised): got nil err, want error")
	}
}

func TestPairedAndPositional(t *testing.T) {
	for _, tc := range []struct {
		kind           Kind
		wantPaired     bool
		wantPositional bool
	}{
		{GiniKind, false, false},
		{GiniCorrectedKind, false, false},
		{CFuncKind, false, false},
		{MeanSimilarityKind, true, false},
		{CohenKind, true, true},
		{AdjustedRandKind, true, true},
	} {
		if got := tc.kind.Paired(); got != tc.wantPaired {
			t.Errorf("%v.Paired(): got %t, want %t", tc.kind, got, tc.wantPaired)
		}
		if got := tc.kind.Positional(); got != tc.wantPositional {
			t.Errorf("%v.Positional(): got %t, want %t", tc.kind, got, tc.wantPositional)
		}
	}
}
