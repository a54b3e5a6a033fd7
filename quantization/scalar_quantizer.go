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

import "math"

const (
	// codeOffset shifts the signed level range [-127, 127] into [1, 255].
	// A zero sample always maps to code 128.
	codeOffset = 128
	// maxLevel is the largest signed quantization level.
	maxLevel = 127.0
)

// AbsMax returns the largest absolute value among the finite entries of
// data. Non-finite entries are skipped; if no finite entry exists (including
// the empty sequence) it returns 1.0 so a derived scale is always usable.
func AbsMax(data []float64) float64 {
	max := math.Inf(-1)
	for _, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	if math.IsInf(max, -1) {
		return 1.0
	}
	return max
}

// scaleFor derives the quantization step from a block's dynamic range. An
// all-zero block gets the fallback scale 1/127 so every code becomes 128.
func scaleFor(absMax float64) float64 {
	if absMax == 0 {
		return 1.0 / maxLevel
	}
	return absMax / maxLevel
}

// Quantize8Bit maps every sample to an unsigned 8-bit code using the scale
// derived from the block's own dynamic range. Rounding is round half to
// even, applied identically everywhere so digests stay reproducible bit for
// bit. Non-finite samples clip deterministically: NaN maps to 128, +inf to
// 255, -inf to 1.
func Quantize8Bit(data []float64) []byte {
	scale := scaleFor(AbsMax(data))
	codes := make([]byte, len(data))
	for i, x := range data {
		codes[i] = quantizeValue(x, scale)
	}
	return codes
}

func quantizeValue(x, scale float64) byte {
	scaled := x / scale
	if math.IsNaN(scaled) {
		return codeOffset
	}
	if scaled > maxLevel {
		scaled = maxLevel
	}
	if scaled < -maxLevel {
		scaled = -maxLevel
	}
	return byte(math.RoundToEven(scaled) + codeOffset)
}

// Dequantize8Bit inverts the code mapping for a block whose dynamic range
// was absMax. The reconstruction is approximate and used for error
// measurement only.
func Dequantize8Bit(codes []byte, absMax float64) []float64 {
	scale := scaleFor(absMax)
	out := make([]float64, len(codes))
	for i, c := range codes {
		out[i] = (float64(c) - codeOffset) * scale
	}
	return out
}
