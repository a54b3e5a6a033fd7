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

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	enterrors "github.com/weaviate/blockquant/entities/errors"
	"github.com/weaviate/blockquant/quantization"
	"github.com/weaviate/blockquant/testinghelpers"
	"github.com/weaviate/blockquant/usecases/monitoring"
)

type Options struct {
	Samples     int    `long:"samples" default:"1000" description:"number of gaussian samples to generate"`
	Seed        int64  `long:"seed" default:"42" description:"sample generator seed"`
	BlockSize   int    `long:"block-size" default:"128" description:"samples per block"`
	Precision   int    `long:"precision" default:"10" description:"decimal digits kept by the original-data digest"`
	Parallel    bool   `long:"parallel" description:"quantize blocks concurrently"`
	ShowBlocks  int    `long:"show-blocks" default:"3" description:"number of blocks to log in detail"`
	MetricsAddr string `long:"metrics-addr" description:"serve prometheus metrics on this address and wait for interrupt"`
	LogLevel    string `long:"log-level" default:"info" choice:"debug" choice:"info" choice:"warn"`
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	log := logger.WithField("app", "blockquant-demo")

	var metrics *monitoring.Metrics
	if opts.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		metrics = monitoring.NewMetrics(registry)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		enterrors.GoWrapper(func() {
			log.WithField("addr", opts.MetricsAddr).Info("serving prometheus metrics")
			if err := http.ListenAndServe(opts.MetricsAddr, mux); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}, log)
	}

	quantizer, err := quantization.NewBlockQuantizer(quantization.Config{
		BlockSize:             opts.BlockSize,
		VerificationPrecision: opts.Precision,
		Metrics:               metrics,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("create quantizer")
	}

	data := testinghelpers.NormalSamples(opts.Samples, 0, 1, opts.Seed)

	var results []quantization.BlockResult
	if opts.Parallel {
		results = quantizer.QuantizeAllBlocksConcurrently(data)
	} else {
		results = quantizer.QuantizeAllBlocks(data)
	}
	log.WithFields(logrus.Fields{
		"samples": len(data),
		"blocks":  len(results),
	}).Info("quantization finished")

	show := opts.ShowBlocks
	if show > len(results) {
		show = len(results)
	}
	for _, block := range results[:show] {
		preview := block.QuantizedData
		if len(preview) > 5 {
			preview = preview[:5]
		}
		log.WithFields(logrus.Fields{
			"block_id":           block.BlockID,
			"processing_time_ms": fmt.Sprintf("%.3f", block.ProcessingTimeMS),
			"compression_ratio":  block.CompressionRatio,
			"mean_squared_error": fmt.Sprintf("%.6f", block.MeanSquaredError),
			"original_digest":    block.Verification.OriginalDigest,
			"quantized_digest":   block.Verification.QuantizedDigest,
			"first_codes":        fmt.Sprintf("%v", preview),
		}).Info("block quantized")
	}

	if err := quantizer.Audit(results); err != nil {
		log.WithError(err).Fatal("digest audit failed")
	}
	log.Info("digest audit passed")

	if opts.MetricsAddr != "" {
		log.Info("press ctrl-c to exit")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
	}
}
