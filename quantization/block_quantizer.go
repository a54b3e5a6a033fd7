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

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/weaviate/blockquant/usecases/monitoring"
	"github.com/weaviate/blockquant/verification"
)

const (
	DefaultBlockSize             = 4096
	DefaultVerificationPrecision = 10
)

// Config holds the constructor-time settings of a BlockQuantizer. Zero
// values fall back to the defaults; to verify at an integer precision of 0
// decimal digits, use a verification.HashVerifier directly.
type Config struct {
	// BlockSize is the number of samples per block. The balanced split may
	// produce blocks up to one sample shorter.
	BlockSize int
	// VerificationPrecision is the number of decimal digits the hash
	// verifier keeps of every original sample.
	VerificationPrecision int
	// Metrics may be nil, in which case no metrics are collected.
	Metrics *monitoring.Metrics
}

// BlockResult is the full outcome of quantizing one block. It is a value
// object: created once, returned, never mutated afterwards.
type BlockResult struct {
	BlockID       uint64
	QuantizedData []byte
	// OriginalData is the input block, retained so the digests can be
	// re-checked later without the full input sequence.
	OriginalData []float64
	Verification verification.Record
	// ProcessingTimeMS covers the quantization step only, not hashing or
	// metric computation. Diagnostic, excluded from any correctness
	// property.
	ProcessingTimeMS float64
	CompressionRatio float64
	MeanSquaredError float64
}

// BlockQuantizer splits sample sequences into fixed-size blocks, quantizes
// each to 8-bit codes with a per-block dynamic range and attaches a
// verification record. Its configuration is immutable, so a single instance
// is safe for concurrent use.
type BlockQuantizer struct {
	blockSize int
	verifier  *verification.HashVerifier
	metrics   *monitoring.Metrics
	logger    logrus.FieldLogger
}

func NewBlockQuantizer(cfg Config, logger logrus.FieldLogger) (*BlockQuantizer, error) {
	blockSize := cfg.BlockSize
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize < 0 {
		return nil, errors.Errorf("block size must be positive: %d", cfg.BlockSize)
	}

	precision := cfg.VerificationPrecision
	if precision == 0 {
		precision = DefaultVerificationPrecision
	}
	verifier, err := verification.NewHashVerifier(precision)
	if err != nil {
		return nil, errors.Wrap(err, "create hash verifier")
	}

	return &BlockQuantizer{
		blockSize: blockSize,
		verifier:  verifier,
		metrics:   cfg.Metrics,
		logger:    logger,
	}, nil
}

func (bq *BlockQuantizer) BlockSize() int {
	return bq.blockSize
}

// QuantizeBlock quantizes a single block and assembles its result. The
// digests cover the un-rounded original values (subject to the verifier's
// precision) and the emitted codes; the MSE shares the exact scale
// derivation of the quantization step.
func (bq *BlockQuantizer) QuantizeBlock(blockID uint64, data []float64) BlockResult {
	begin := time.Now()
	codes := Quantize8Bit(data)
	took := time.Since(begin)

	record := bq.verifier.VerifyBlock(blockID, data, codes)
	ratio, mse, _ := ComputeMetrics(data, codes, AbsMax(data))

	bq.metrics.BlockQuantized(took, len(data))

	return BlockResult{
		BlockID:          blockID,
		QuantizedData:    codes,
		OriginalData:     data,
		Verification:     record,
		ProcessingTimeMS: float64(took.Nanoseconds()) / 1e6,
		CompressionRatio: ratio,
		MeanSquaredError: mse,
	}
}

// QuantizeAllBlocks splits data into ceil(len/blockSize) contiguous blocks,
// quantizes them sequentially and returns the results in block-id order.
// Concatenating the blocks reproduces the input with no gaps or overlaps.
func (bq *BlockQuantizer) QuantizeAllBlocks(data []float64) []BlockResult {
	blocks := bq.splitBlocks(data)
	results := make([]BlockResult, len(blocks))
	for i, block := range blocks {
		results[i] = bq.QuantizeBlock(uint64(i), block)
	}
	return results
}

// QuantizeAllBlocksConcurrently is the parallel variant of
// QuantizeAllBlocks. Blocks are independent, so the results are identical to
// the sequential path and still ordered by block id.
func (bq *BlockQuantizer) QuantizeAllBlocksConcurrently(data []float64) []BlockResult {
	blocks := bq.splitBlocks(data)
	results := make([]BlockResult, len(blocks))
	Concurrently(bq.logger, uint64(len(blocks)), func(i uint64) {
		results[i] = bq.QuantizeBlock(i, blocks[i])
	})
	return results
}

// Audit re-derives both digests for every result and fails on the first
// block whose stored record no longer matches its data.
func (bq *BlockQuantizer) Audit(results []BlockResult) error {
	return ConcurrentlyWithError(bq.logger, uint64(len(results)), func(i uint64) error {
		res := results[i]
		if !bq.verifier.Matches(res.Verification, res.OriginalData, res.QuantizedData) {
			return errors.Errorf("block %d: recorded digests do not match recomputed digests", res.BlockID)
		}
		return nil
	})
}

// splitBlocks divides data into ceil(len/blockSize) contiguous blocks of as
// equal a size as possible: with n blocks, the first len%n blocks carry one
// extra sample. An empty input yields no blocks.
func (bq *BlockQuantizer) splitBlocks(data []float64) [][]float64 {
	count := (len(data) + bq.blockSize - 1) / bq.blockSize
	if count == 0 {
		return nil
	}

	base := len(data) / count
	extra := len(data) % count
	blocks := make([][]float64, 0, count)
	start := 0
	for i := 0; i < count; i++ {
		size := base
		if i < extra {
			size++
		}
		blocks = append(blocks, data[start:start+size])
		start += size
	}
	return blocks
}
