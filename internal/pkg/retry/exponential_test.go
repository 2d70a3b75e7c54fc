package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func testLogger(t *testing.T) *logger.ZapLogger {
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	assert.NoError(t, err)
	t.Cleanup(func() { _ = zl.Close() })
	return zl
}

func TestExecute_SucceedsAfterTransientFailures(t *testing.T) {
	r := New(testConfig(), testLogger(t))

	attempts := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestExecute_ExhaustsRetryBudget(t *testing.T) {
	r := New(testConfig(), testLogger(t))

	attempts := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("still down")
	})

	assert.Error(t, err)
	assert.Equal(t, 4, attempts) // initial attempt + 3 retries
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	cfg := testConfig()
	fatal := errors.New("fatal")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, fatal) }
	r := New(cfg, testLogger(t))

	attempts := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestExecute_ContextCancellation(t *testing.T) {
	r := New(testConfig(), testLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("never reached on cancelled context")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
