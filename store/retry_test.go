package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestRetryRecoversFromTransientError(t *testing.T) {
	calls := 0
	err := retry(context.Background(), zap.NewNop(), "test", 2, time.Millisecond, func() error {
		calls++
		if calls == 1 {
			return errors.New("connection reset by peer")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryIsBounded(t *testing.T) {
	calls := 0
	boom := errors.New("db down")
	err := retry(context.Background(), zap.NewNop(), "test", 2, time.Millisecond, func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestRetrySkipsNonRetryable(t *testing.T) {
	for _, target := range []error{gorm.ErrRecordNotFound, context.Canceled, context.DeadlineExceeded} {
		calls := 0
		err := retry(context.Background(), zap.NewNop(), "test", 3, time.Millisecond, func() error {
			calls++
			return target
		})
		assert.ErrorIs(t, err, target)
		assert.Equal(t, 1, calls, "%v must not be retried", target)
	}
}

func TestRetryStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry(ctx, zap.NewNop(), "test", 5, time.Hour, func() error {
		calls++
		cancel()
		return errors.New("timeout talking to db")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestFindByIDsEmptyShortCircuits(t *testing.T) {
	rows, err := NewProjects(nil, nil).FindByIDs(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, rows)
}
