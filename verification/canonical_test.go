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

package verification_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weaviate/blockquant/verification"
)

func TestCanonicalFloats(t *testing.T) {
	cases := []struct {
		name      string
		values    []float64
		precision int
		expected  string
	}{
		{"empty", nil, 10, "[]"},
		{"trailing zeros stripped", []float64{0, 63.5, -127}, 10, "[0,63.5,-127]"},
		{"single value", []float64{1.25}, 10, "[1.25]"},
		{"ties to even down", []float64{0.125}, 2, "[0.12]"},
		{"ties to even up", []float64{0.375}, 2, "[0.38]"},
		{"ties to even at zero digits", []float64{2.5, 3.5}, 0, "[2,4]"},
		{"negative zero normalized", []float64{-1e-12}, 2, "[0]"},
		{"large value stays fixed notation", []float64{1e21}, 2, "[1000000000000000000000]"},
		{"non-finite tokens", []float64{math.NaN(), math.Inf(1), math.Inf(-1)}, 10, "[nan,inf,-inf]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, verification.CanonicalFloats(tc.values, tc.precision))
		})
	}
}

func TestCanonicalCodes(t *testing.T) {
	assert.Equal(t, "[]", verification.CanonicalCodes(nil))
	assert.Equal(t, "[128,192,1]", verification.CanonicalCodes([]byte{128, 192, 1}))
	assert.Equal(t, "[0,255]", verification.CanonicalCodes([]byte{0, 255}))
}
