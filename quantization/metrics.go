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

package quantization

import "github.com/pkg/errors"

// CompressionRatio is the storage ratio of 32-bit float samples to 8-bit
// codes. It is independent of block content.
const CompressionRatio = 4.0

// ComputeMetrics returns the compression ratio and the mean squared error of
// a quantized block. The error is measured against a dequantization using
// the scale derived from absMax, which callers must recompute from the
// original block rather than cache from the quantization step. Empty blocks
// yield an MSE of 0. Mismatched lengths are a caller contract violation and
// fail fast.
func ComputeMetrics(original []float64, quantized []byte, absMax float64) (float64, float64, error) {
	if len(original) != len(quantized) {
		return 0, 0, errors.Errorf("sequence lengths don't match: %d vs %d",
			len(original), len(quantized))
	}
	if len(original) == 0 {
		return CompressionRatio, 0, nil
	}

	scale := scaleFor(absMax)
	var sum float64
	for i, x := range original {
		diff := x - (float64(quantized[i])-codeOffset)*scale
		sum += diff * diff
	}
	return CompressionRatio, sum / float64(len(original)), nil
}
