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
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
)

// DigestLength is the number of lowercase hex characters kept from the
// SHA-256 sum. The digest is an equality fingerprint for integrity checks,
// not a cryptographic commitment.
const DigestLength = 8

// Record pairs the digests of a block before and after quantization so the
// pair can later be re-checked without re-running quantization.
type Record struct {
	BlockID         uint64
	OriginalDigest  string
	QuantizedDigest string
	// CreatedAt is captured fresh for every record and is for auditing
	// only. It never participates in digest computation or comparison.
	CreatedAt time.Time
}

// HashVerifier computes deterministic digests of numeric sequences. The
// precision controls how many decimal digits of a float survive into the
// canonical text, so it is part of the digest contract: re-verification must
// use the precision the record was created with.
type HashVerifier struct {
	precision int
}

func NewHashVerifier(precision int) (*HashVerifier, error) {
	if precision < 0 {
		return nil, errors.Errorf("verification precision must be non-negative: %d", precision)
	}
	return &HashVerifier{precision: precision}, nil
}

func (hv *HashVerifier) Precision() int {
	return hv.precision
}

// DigestOriginal computes the digest of the pre-quantization float values.
func (hv *HashVerifier) DigestOriginal(blockID uint64, values []float64) string {
	return shortDigest(CanonicalFloats(values, hv.precision))
}

// DigestQuantized computes the digest of the post-quantization codes.
func (hv *HashVerifier) DigestQuantized(blockID uint64, codes []byte) string {
	return shortDigest(CanonicalCodes(codes))
}

// VerifyBlock digests both representations of a block and returns the
// record. It has no side effects beyond capturing the timestamp.
func (hv *HashVerifier) VerifyBlock(blockID uint64, original []float64, quantized []byte) Record {
	return Record{
		BlockID:         blockID,
		OriginalDigest:  hv.DigestOriginal(blockID, original),
		QuantizedDigest: hv.DigestQuantized(blockID, quantized),
		CreatedAt:       time.Now(),
	}
}

// Matches recomputes both digests for the given data and reports whether
// they equal the ones stored in rec.
func (hv *HashVerifier) Matches(rec Record, original []float64, quantized []byte) bool {
	return rec.OriginalDigest == hv.DigestOriginal(rec.BlockID, original) &&
		rec.QuantizedDigest == hv.DigestQuantized(rec.BlockID, quantized)
}

func shortDigest(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])[:DigestLength]
}
