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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaviate/blockquant/verification"
)

// first 8 hex chars of sha256("[]")
const emptySequenceDigest = "4f53cda1"

func TestDigestDeterminism(t *testing.T) {
	hv, err := verification.NewHashVerifier(10)
	require.NoError(t, err)

	values := []float64{0.1, -2.75, 3.25, 1e-9}
	assert.Equal(t, hv.DigestOriginal(0, values), hv.DigestOriginal(0, values))

	codes := []byte{1, 128, 255}
	assert.Equal(t, hv.DigestQuantized(0, codes), hv.DigestQuantized(0, codes))
}

func TestDigestFormat(t *testing.T) {
	hv, err := verification.NewHashVerifier(10)
	require.NoError(t, err)

	hexDigest := regexp.MustCompile(`^[0-9a-f]{8}$`)
	assert.Regexp(t, hexDigest, hv.DigestOriginal(0, []float64{1.5, -2}))
	assert.Regexp(t, hexDigest, hv.DigestQuantized(0, []byte{7}))
}

func TestDigestSensitivity(t *testing.T) {
	hv, err := verification.NewHashVerifier(10)
	require.NoError(t, err)

	a := hv.DigestOriginal(0, []float64{1, 2, 3})
	b := hv.DigestOriginal(0, []float64{1, 2, 3.5})
	assert.NotEqual(t, a, b)

	qa := hv.DigestQuantized(0, []byte{128, 129})
	qb := hv.DigestQuantized(0, []byte{128, 130})
	assert.NotEqual(t, qa, qb)
}

func TestDigestIgnoresSubPrecisionNoise(t *testing.T) {
	hv, err := verification.NewHashVerifier(2)
	require.NoError(t, err)

	a := hv.DigestOriginal(0, []float64{1.234})
	b := hv.DigestOriginal(0, []float64{1.2341})
	assert.Equal(t, a, b)
}

func TestDigestEmptySequence(t *testing.T) {
	hv, err := verification.NewHashVerifier(10)
	require.NoError(t, err)

	assert.Equal(t, emptySequenceDigest, hv.DigestOriginal(0, nil))
	assert.Equal(t, emptySequenceDigest, hv.DigestQuantized(0, nil))
}

func TestVerifyBlock(t *testing.T) {
	hv, err := verification.NewHashVerifier(10)
	require.NoError(t, err)

	original := []float64{0, 63.5, -127}
	quantized := []byte{128, 192, 1}
	rec := hv.VerifyBlock(7, original, quantized)

	assert.Equal(t, uint64(7), rec.BlockID)
	assert.Equal(t, "4316349b", rec.OriginalDigest)  // sha256("[0,63.5,-127]")[:8]
	assert.Equal(t, "7124f759", rec.QuantizedDigest) // sha256("[128,192,1]")[:8]
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestMatches(t *testing.T) {
	hv, err := verification.NewHashVerifier(10)
	require.NoError(t, err)

	original := []float64{1.5, -2.25}
	quantized := []byte{213, 1}
	rec := hv.VerifyBlock(0, original, quantized)

	assert.True(t, hv.Matches(rec, original, quantized))
	assert.False(t, hv.Matches(rec, []float64{1.5, -2.26}, quantized))
	assert.False(t, hv.Matches(rec, original, []byte{213, 2}))
}

func TestNegativePrecisionRejected(t *testing.T) {
	_, err := verification.NewHashVerifier(-1)
	assert.Error(t, err)
}
