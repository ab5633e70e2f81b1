package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager is safe to use with a nil Querier; every call is
// then a no-op, which is how the server runs without DATABASE_URL.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) IncrementSetupsStartedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.AnalyticsIncrementSetupsStartedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementSetupsCompletedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.AnalyticsIncrementSetupsCompletedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementPlacementsRejectedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.AnalyticsIncrementPlacementsRejectedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetSetupsCompletedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.AnalyticsGetSetupsCompletedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetPlacementsRejectedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.AnalyticsGetPlacementsRejectedCount(ctx, serverIpNet)
}
