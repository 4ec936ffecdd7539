package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/jwt"
)

const RevokedTokenSweepInterval = 15 * time.Minute

// RegisterTokenJanitor drops signed-out tokens from memory once they would
// have expired anyway.
func RegisterTokenJanitor(s *Scheduler, jwtService jwt.Service, interval time.Duration) {
	s.AddJob("prune_revoked_tokens", interval, func(ctx context.Context) error {
		if n := jwtService.PruneRevokedTokens(); n > 0 {
			slog.Info("Pruned revoked tokens", "count", n)
		}
		return nil
	})
}
