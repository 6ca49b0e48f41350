//
// Copyright 2020 Google LLC
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

// Package rand provides the random permutations used by permutation tests of
// the agreement measures.
//
// Package-level functions draw from a buffered cryptographically secure
// source and are safe for concurrent use. Seeded sources are reproducible but
// must not be shared between goroutines.
package rand

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math"
	mathrand "math/rand"
	"sync"

	log "github.com/golang/glog"
)

var (
	randBufLock sync.Mutex
	randBuf     io.Reader = bufio.NewReaderSize(cryptorand.Reader, 65536)
)

func readRandBuf(b []byte) (int, error) {
	randBufLock.Lock()
	defer randBufLock.Unlock()
	return io.ReadFull(randBuf, b)
}

// U64 returns a uniformly random uint64.
func U64() uint64 {
	var r [8]uint8
	if _, err := readRandBuf(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return binary.LittleEndian.Uint64(r[:])
}

// I63n returns an integer from the set {0,...,n-1} uniformly at random.
// The value of n must be positive.
func I63n(n int64) int64 {
	largestMultipleOfN := (math.MaxInt64 / n) * n
	var positiveRandomInteger int64
	for {
		// Draw random 64 bit sequence and set sign bit to 0.
		positiveRandomInteger = int64(U64()) & 0x7fffffffffffffff
		if positiveRandomInteger < largestMultipleOfN {
			break
		}
	}
	return positiveRandomInteger % n
}

// Shuffle permutes x in place, uniformly over all permutations.
func Shuffle(x []float64) {
	shuffle(x, I63n)
}

// shuffle is a Fisher-Yates shuffle drawing indices from intn.
func shuffle(x []float64, intn func(int64) int64) {
	for i := len(x) - 1; i > 0; i-- {
		j := intn(int64(i + 1))
		x[i], x[j] = x[j], x[i]
	}
}

// Source is a source of uniformly random permutations.
type Source interface {
	Shuffle(x []float64)
}

type secureSource struct{}

func (secureSource) Shuffle(x []float64) { Shuffle(x) }

// Secure returns a Source backed by the package-level secure functions.
func Secure() Source {
	return secureSource{}
}

// Seeded is a reproducible Source. Not thread-safe.
type Seeded struct {
	r *mathrand.Rand
}

// NewSeeded returns a Seeded source initialized with seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: mathrand.New(mathrand.NewSource(seed))}
}

// I63n returns an integer from the set {0,...,n-1}. The value of n must be
// positive.
func (s *Seeded) I63n(n int64) int64 {
	return s.r.Int63n(n)
}

// Shuffle permutes x in place.
func (s *Seeded) Shuffle(x []float64) {
	shuffle(x, s.I63n)
}
