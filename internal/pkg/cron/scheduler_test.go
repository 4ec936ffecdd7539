package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.AddJob("failing", 5*time.Millisecond, func(ctx context.Context) error {
		return errors.New("boom")
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()
	stopped := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestTokenJanitor(t *testing.T) {
	svc, err := jwt.NewJWTService("secret", "1h")
	require.NoError(t, err)

	svc.RevokeToken("expired", time.Now().Add(-time.Hour).Unix())
	svc.RevokeToken("live", time.Now().Add(time.Hour).Unix())

	s := NewScheduler()
	RegisterTokenJanitor(s, svc, RevokedTokenSweepInterval)
	s.RunOnce(context.Background())

	assert.False(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
}
