package mcpsrv

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cybersky/showcase/types"
)

// RefreshPeriodically reloads the catalog every interval until ctx is done.
// Sources that cannot reload are left alone.
func RefreshPeriodically(ctx context.Context, source types.CatalogSource, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		return
	}
	_, canReload := source.(reloadSource)
	_, canClear := source.(cacheClearSource)
	if !canReload && !canClear {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, _, err := reload(ctx, source); err != nil && ctx.Err() == nil {
				logger.Warn("catalog refresh failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}
