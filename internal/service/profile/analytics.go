package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const (
	defaultAnalyticsDays = 30
	maxAnalyticsDays     = 365
)

// GetAnalytics returns the daily view counters of the last days days,
// newest first. days outside 1..365 falls back to 30.
func (s *Service) GetAnalytics(ctx context.Context, caller domain.Caller, id uuid.UUID, days int) ([]domain.DailyViews, error) {
	if days <= 0 || days > maxAnalyticsDays {
		days = defaultAnalyticsDays
	}

	if _, err := s.owned(ctx, caller, id); err != nil {
		return nil, fmt.Errorf("profile.GetAnalytics: %w", err)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	views, err := s.analytics.ListByProfile(ctx, id, since)
	if err != nil {
		return nil, fmt.Errorf("profile.GetAnalytics: %w", err)
	}
	return views, nil
}
