package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"sumbandila/pkg/platform/sentinel"
)

func TestRunConcurrentCollectsEveryResult(t *testing.T) {
	boom := errors.New("boom")
	result := RunConcurrent(9, func(idx int) error {
		switch idx % 3 {
		case 0:
			return nil
		case 1:
			return fmt.Errorf("register: %w", sentinel.ErrAlreadyExists)
		default:
			return boom
		}
	})

	assert.Len(t, result.Errs, 9)
	assert.Equal(t, 3, result.Successes())
	assert.Equal(t, 3, result.Conflicts())
	assert.Equal(t, []error{boom, boom, boom}, result.Unexpected())
}
