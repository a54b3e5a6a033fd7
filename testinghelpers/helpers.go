//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2025 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package testinghelpers

import "math/rand"

// NormalSamples generates n gaussian samples with the given mean and
// standard deviation. The seed makes runs reproducible.
func NormalSamples(n int, mean, std float64, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = r.NormFloat64()*std + mean
	}
	return samples
}

// RampSamples generates n samples climbing linearly from 0 to limit,
// useful when a test needs a known dynamic range.
func RampSamples(n int, limit float64) []float64 {
	samples := make([]float64, n)
	if n < 2 {
		return samples
	}
	step := limit / float64(n-1)
	for i := range samples {
		samples[i] = float64(i) * step
	}
	return samples
}
