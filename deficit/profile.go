// SPDX-License-Identifier: MIT

package deficit

import (
	"slices"

	"github.com/montanaflynn/stats"
)

// Bucket counts the subsets sharing one deficit value.
type Bucket struct {
	Deficit int `json:"deficit" yaml:"deficit"`
	Count   int `json:"count" yaml:"count"`
}

// Profile summarizes the deficit over every evaluated subset.
type Profile struct {
	Buckets  []Bucket `json:"buckets" yaml:"buckets"` // ascending by Deficit
	Balanced int      `json:"balanced" yaml:"balanced"`
	Mean     float64  `json:"mean" yaml:"mean"`
	Median   float64  `json:"median" yaml:"median"`
	StdDev   float64  `json:"stdDev" yaml:"std_dev"`
}

// newProfile builds the histogram and summary statistics of samples.
// samples is non-empty: Analyze only calls it after at least one subset.
func newProfile(samples []float64) *Profile {
	counts := make(map[int]int)
	for _, s := range samples {
		counts[int(s)]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	p := &Profile{Buckets: make([]Bucket, 0, len(keys)), Balanced: counts[0]}
	for _, k := range keys {
		p.Buckets = append(p.Buckets, Bucket{Deficit: k, Count: counts[k]})
	}

	data := stats.Float64Data(samples)
	// stats only errors on empty input, which cannot happen here.
	p.Mean, _ = data.Mean()
	p.Median, _ = data.Median()
	p.StdDev, _ = data.StandardDeviation()

	return p
}
