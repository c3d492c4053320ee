package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maheshrc27/crosspost/internal/models"
)

type HistoryRepository interface {
	List(ctx context.Context) ([]*models.PostRecord, error)
	Prepend(ctx context.Context, record *models.PostRecord) error
	Clear(ctx context.Context) error
}

type historyRepository struct {
	// mu serializes the read-modify-write in Prepend.
	mu    sync.Mutex
	store KVStore
}

func NewHistoryRepository(store KVStore) HistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) List(ctx context.Context) ([]*models.PostRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *historyRepository) load(ctx context.Context) ([]*models.PostRecord, error) {
	raw, ok, err := r.store.Get(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*models.PostRecord{}, nil
	}

	var records []*models.PostRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("stored history is malformed: %w", err)
	}
	if records == nil {
		records = []*models.PostRecord{}
	}
	return records, nil
}

func (r *historyRepository) Prepend(ctx context.Context, record *models.PostRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append([]*models.PostRecord{record}, records...)

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, HistoryKey, raw)
}

func (r *historyRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Delete(ctx, HistoryKey)
}
