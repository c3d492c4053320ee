package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/crosspost/internal/service"
)

type AnalyticsRefreshJob struct {
	as      service.AnalyticsService
	timeout time.Duration
}

func NewAnalyticsRefreshJob(as service.AnalyticsService) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{
		as:      as,
		timeout: 30 * time.Second,
	}
}

func (j *AnalyticsRefreshJob) RefreshAnalytics() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.as.Load(ctx); err != nil {
		slog.Info("Unable to refresh analytics")
	}
}
