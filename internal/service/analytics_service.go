package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/pkg/errors"
)

const analyticsFetchTimeout = 10 * time.Second

type AnalyticsService interface {
	// Load fetches the analytics document and replaces the cached snapshot,
	// including a failed result.
	Load(ctx context.Context) (*models.Analytics, error)
	// Snapshot returns the last loaded result, loading once if nothing was
	// loaded yet.
	Snapshot(ctx context.Context) (*models.Analytics, error)
}

type analyticsService struct {
	source string
	client *http.Client

	mu     sync.RWMutex
	loaded bool
	data   *models.Analytics
	err    error
}

func NewAnalyticsService(source string, client *http.Client) AnalyticsService {
	if client == nil {
		client = &http.Client{Timeout: analyticsFetchTimeout}
	}
	return &analyticsService{source: source, client: client}
}

func (s *analyticsService) Load(ctx context.Context) (*models.Analytics, error) {
	data, err := s.fetch(ctx)
	if err != nil {
		slog.Error("Error loading analytics", "source", s.source, "error", err.Error())
		data = nil
	}

	s.mu.Lock()
	s.loaded, s.data, s.err = true, data, err
	s.mu.Unlock()

	return data, err
}

func (s *analyticsService) Snapshot(ctx context.Context) (*models.Analytics, error) {
	s.mu.RLock()
	loaded, data, err := s.loaded, s.data, s.err
	s.mu.RUnlock()

	if !loaded {
		return s.Load(ctx)
	}
	return data, err
}

func (s *analyticsService) fetch(ctx context.Context) (*models.Analytics, error) {
	raw, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	var doc struct {
		TotalReach     *float64        `json:"total_reach"`
		EngagementRate json.RawMessage `json:"engagement_rate"`
		WeeklyStats    *[]float64      `json:"weekly_stats"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "can't decode analytics from %s", s.source)
	}
	if doc.TotalReach == nil {
		return nil, errors.Errorf("analytics from %s has no total_reach", s.source)
	}
	if doc.WeeklyStats == nil {
		return nil, errors.Errorf("analytics from %s has no weekly_stats", s.source)
	}

	return &models.Analytics{
		TotalReach:     *doc.TotalReach,
		EngagementRate: doc.EngagementRate,
		WeeklyStats:    *doc.WeeklyStats,
	}, nil
}

func (s *analyticsService) read(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(s.source, "http://") && !strings.HasPrefix(s.source, "https://") {
		raw, err := os.ReadFile(s.source)
		if err != nil {
			return nil, errors.Wrapf(err, "can't read analytics file %s", s.source)
		}
		return raw, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create an http request for %s", s.source)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "can't download from %s", s.source)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("can't download %s, unexpected status code %s", s.source, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read the body of %s response", s.source)
	}
	return raw, nil
}
