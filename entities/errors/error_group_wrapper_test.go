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

package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorGroupWrapperPropagatesError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eg := NewErrorGroupWrapper(logger)

	eg.Go(func() error { return nil })
	eg.Go(func() error { return fmt.Errorf("task failed") })

	err := eg.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task failed")
}

func TestErrorGroupWrapperRecoversPanic(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eg := NewErrorGroupWrapper(logger)

	eg.Go(func() error { panic("boom") })

	err := eg.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic occurred")
}

func TestGoWrapperRecoversPanic(t *testing.T) {
	logger, hook := test.NewNullLogger()

	GoWrapper(func() { panic("boom") }, logger)

	assert.Eventually(t, func() bool {
		return len(hook.AllEntries()) > 0
	}, time.Second, 10*time.Millisecond)
}
