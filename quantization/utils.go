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
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	enterrors "github.com/weaviate/blockquant/entities/errors"
)

type Action func(taskIndex uint64)

// Concurrently splits the task indices 0..n-1 into contiguous ranges, one
// per available CPU, and runs action on each index. It returns once every
// task has finished. Tasks must not depend on each other.
func Concurrently(log logrus.FieldLogger, n uint64, action Action) {
	if n == 0 {
		return
	}
	workerCount := uint64(runtime.GOMAXPROCS(0))
	if workerCount > n {
		workerCount = n
	}
	split := (n + workerCount - 1) / workerCount

	wg := &sync.WaitGroup{}
	for worker := uint64(0); worker < workerCount; worker++ {
		start := worker * split
		if start >= n {
			break
		}
		end := start + split
		if end > n {
			end = n
		}

		wg.Add(1)
		enterrors.GoWrapper(func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				action(i)
			}
		}, log)
	}
	wg.Wait()
}

// ConcurrentlyWithError behaves like Concurrently for actions that can fail.
// It returns the first non-nil error; remaining tasks of other workers may
// still run to completion of their range.
func ConcurrentlyWithError(log logrus.FieldLogger, n uint64, action func(taskIndex uint64) error) error {
	if n == 0 {
		return nil
	}
	workerCount := uint64(runtime.GOMAXPROCS(0))
	if workerCount > n {
		workerCount = n
	}
	split := (n + workerCount - 1) / workerCount

	eg := enterrors.NewErrorGroupWrapper(log)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for worker := uint64(0); worker < workerCount; worker++ {
		start := worker * split
		if start >= n {
			break
		}
		end := start + split
		if end > n {
			end = n
		}

		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := action(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
