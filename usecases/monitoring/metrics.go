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

package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the quantization pipeline to prometheus. All observer
// methods are safe to call on a nil receiver, so an embedding system can run
// unmonitored without guarding every call site.
type Metrics struct {
	BlocksQuantized  prometheus.Counter
	SamplesQuantized prometheus.Counter
	BlockDuration    prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		BlocksQuantized: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "blockquant_blocks_quantized_total",
			Help: "Total number of blocks quantized",
		}),
		SamplesQuantized: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "blockquant_samples_quantized_total",
			Help: "Total number of samples quantized",
		}),
		BlockDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "blockquant_block_duration_seconds",
			Help:    "Duration of single-block quantization in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// BlockQuantized records one completed block.
func (m *Metrics) BlockQuantized(took time.Duration, samples int) {
	if m == nil {
		return
	}

	m.BlocksQuantized.Inc()
	m.SamplesQuantized.Add(float64(samples))
	m.BlockDuration.Observe(took.Seconds())
}
