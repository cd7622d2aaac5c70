// Copyright 2025 Ghaith Chrit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// targetCollisionProb bounds the birthday-paradox probability that two
// independently drawn strings of the chosen length collide.
const targetCollisionProb = 1e-6

const (
	// Generated datasets are reused across trials and structures within
	// a scaling run; they go stale quickly after that.
	datasetCacheExpiration = 30 * time.Minute
	datasetCacheCleanup    = 5 * time.Minute
)

var datasetCache = cache.New(datasetCacheExpiration, datasetCacheCleanup)

type cachedDataset struct {
	strings []string
	length  int
}

// MinStringLength returns the smallest string length over the alphabet
// for which num independent draws stay under targetCollisionProb.
func MinStringLength(num int) int {
	if num < 2 {
		return 1
	}
	bits := math.Log2(float64(num) * float64(num) / (2 * targetCollisionProb))
	return int(math.Ceil(bits / math.Log2(float64(len(alphabet)))))
}

// GenerateStrings returns num unique pseudo-random strings of letters
// and digits, shuffled, plus the length actually used (bumped above the
// requested length when the birthday bound demands it). The same
// (num, length, seed) triple always yields the same dataset; repeated
// calls are served from an in-process cache.
func GenerateStrings(num, length int, seed int64) ([]string, int) {
	cacheKey := fmt.Sprintf("%d:%d:%d", num, length, seed)
	if v, ok := datasetCache.Get(cacheKey); ok {
		ds := v.(cachedDataset)
		out := make([]string, len(ds.strings))
		copy(out, ds.strings)
		return out, ds.length
	}

	if minLength := MinStringLength(num); length < minLength {
		log.Printf("string length %d too short for %d strings; increasing to %d to reduce collision probability", length, num, minLength)
		length = minLength
	}

	rng := rand.New(rand.NewSource(seed))

	// A bloom filter keeps the uniqueness check bounded in memory. A
	// false positive only discards a fresh draw, it never admits a
	// duplicate.
	seen := bloom.NewWithEstimates(uint(num)*2, targetCollisionProb)

	strs := make([]string, 0, num)
	for len(strs) < num {
		s := randomString(rng, length)
		if seen.TestString(s) {
			continue
		}
		seen.AddString(s)
		strs = append(strs, s)
	}
	rng.Shuffle(len(strs), func(i, j int) {
		strs[i], strs[j] = strs[j], strs[i]
	})

	datasetCache.Set(cacheKey, cachedDataset{strings: strs, length: length}, cache.DefaultExpiration)

	out := make([]string, len(strs))
	copy(out, strs)
	return out, length
}

// SampleQueries builds a query set of numQueries strings: half sampled
// from the dataset (expected hits) and the rest freshly generated of the
// same length (expected misses), shuffled together.
func SampleQueries(dataset []string, numQueries, length int, seed int64) []string {
	if numQueries <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	numPositives := numQueries / 2
	if numPositives > len(dataset) {
		numPositives = len(dataset)
	}

	queries := make([]string, 0, numQueries)
	for _, i := range rng.Perm(len(dataset))[:numPositives] {
		queries = append(queries, dataset[i])
	}
	if numNegatives := numQueries - len(queries); numNegatives > 0 {
		negatives, _ := GenerateStrings(numNegatives, length, seed+1)
		queries = append(queries, negatives...)
	}
	rng.Shuffle(len(queries), func(i, j int) {
		queries[i], queries[j] = queries[j], queries[i]
	})
	return queries
}

func randomString(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
