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

package verification

import (
	"math"
	"strconv"
	"strings"
)

// Digests must stay byte-identical across processes and machines, so the
// textual encoding of a numeric sequence is pinned exactly:
//
//   - a sequence v1..vn encodes as "[" + entries joined by "," + "]", the
//     empty sequence as "[]", with no whitespace anywhere
//   - a float entry is rounded to the configured number of decimal digits
//     (round to nearest, ties to even) and rendered in fixed notation, never
//     scientific; trailing zeros and a trailing '.' are stripped, and "-0"
//     normalizes to "0"
//   - non-finite values use the fixed tokens "nan", "inf" and "-inf"
//   - a uint8 entry is plain base-10 with no leading zeros
//
// Any change here invalidates every previously recorded digest.

// CanonicalFloats returns the canonical text of a float sequence at the
// given decimal precision.
func CanonicalFloats(values []float64, precision int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(canonicalFloat(v, precision))
	}
	sb.WriteByte(']')
	return sb.String()
}

// CanonicalCodes returns the canonical text of a uint8 code sequence.
func CanonicalCodes(codes []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range codes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteByte(']')
	return sb.String()
}

func canonicalFloat(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	// FormatFloat with the 'f' verb rounds the exact binary value to the
	// requested number of decimals with ties going to the even digit, and
	// never switches to scientific notation.
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
