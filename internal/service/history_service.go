package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/internal/repository"
)

type HistoryExport struct {
	FileName string
	Data     []byte
}

type HistoryService interface {
	List(ctx context.Context) ([]*models.PostRecord, error)
	Recent(ctx context.Context, n int) ([]*models.PostRecord, error)
	// Filter matches query case-insensitively against platform ids and the
	// display date. An empty query returns the full list.
	Filter(ctx context.Context, query string) ([]*models.PostRecord, error)
	Export(ctx context.Context) (*HistoryExport, error)
	Clear(ctx context.Context, confirmed bool) error
	Feed(ctx context.Context, baseURL string) (string, error)
}

type historyService struct {
	hr  repository.HistoryRepository
	now Clock
}

func NewHistoryService(hr repository.HistoryRepository, now Clock) HistoryService {
	return &historyService{hr: hr, now: now}
}

func (s *historyService) List(ctx context.Context) ([]*models.PostRecord, error) {
	return s.hr.List(ctx)
}

func (s *historyService) Recent(ctx context.Context, n int) ([]*models.PostRecord, error) {
	records, err := s.hr.List(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}

func (s *historyService) Filter(ctx context.Context, query string) ([]*models.PostRecord, error) {
	records, err := s.hr.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return records, nil
	}

	q := strings.ToLower(query)
	filtered := []*models.PostRecord{}
	for _, record := range records {
		if record.Matches(q) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (s *historyService) Export(ctx context.Context) (*HistoryExport, error) {
	records, err := s.hr.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyHistory
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding history: %w", err)
	}

	return &HistoryExport{
		FileName: fmt.Sprintf("crosspost-history-%s.json", s.now().UTC().Format("2006-01-02")),
		Data:     data,
	}, nil
}

func (s *historyService) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return s.hr.Clear(ctx)
}

func (s *historyService) Feed(ctx context.Context, baseURL string) (string, error) {
	records, err := s.hr.List(ctx)
	if err != nil {
		return "", err
	}

	link := strings.TrimSuffix(baseURL, "/") + "/?view=history"
	feed := &feeds.Feed{
		Title:       "Crosspost history",
		Link:        &feeds.Link{Href: link},
		Description: "Posts published from the crosspost dashboard",
		Created:     s.now(),
	}

	for _, record := range records {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       fmt.Sprintf("Post #%s", record.ShortID()),
			Link:        &feeds.Link{Href: link},
			Id:          strconv.FormatInt(record.ID, 10),
			Created:     time.UnixMilli(record.ID),
			Description: fmt.Sprintf("Posted to %s: %s", strings.Join(record.Platforms, ", "), strings.Join(record.Files, ", ")),
		})
	}

	return feed.ToRss()
}
