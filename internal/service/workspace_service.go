package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/crosspost/internal/models"
)

type WorkspaceService interface {
	// Ensure returns a snapshot of the workspace, creating it with the default
	// platform preselected when it does not exist yet.
	Ensure(ctx context.Context, id string) *models.Workspace
	Get(id string) (*models.Workspace, error)
	// Update runs fn on the live workspace under the lock. Returning an error
	// from fn leaves the workspace as fn left it.
	Update(id string, fn func(w *models.Workspace) error) error
	TogglePlatform(id, platformID string) (bool, error)
	Notify(id, message string)
	DrainToasts(id string) []string
	SweepIdle(before time.Time) []*models.Workspace
}

type workspaceService struct {
	mu         sync.Mutex
	workspaces map[string]*models.Workspace
	settings   SettingsService
	platforms  PlatformService
	now        Clock
}

func NewWorkspaceService(settings SettingsService, platforms PlatformService, now Clock) WorkspaceService {
	return &workspaceService{
		workspaces: make(map[string]*models.Workspace),
		settings:   settings,
		platforms:  platforms,
		now:        now,
	}
}

func (s *workspaceService) Ensure(ctx context.Context, id string) *models.Workspace {
	s.mu.Lock()
	w, ok := s.workspaces[id]
	if ok {
		w.LastSeen = s.now()
		snapshot := w.Clone()
		s.mu.Unlock()
		return snapshot
	}
	s.mu.Unlock()

	created := &models.Workspace{ID: id, LastSeen: s.now()}
	if platform := s.defaultPlatform(ctx); platform != "" {
		created.Platforms = []string{platform}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.workspaces[id]; ok {
		return w.Clone()
	}
	s.workspaces[id] = created
	return created.Clone()
}

// defaultPlatform returns the configured default platform when it names a
// known platform card.
func (s *workspaceService) defaultPlatform(ctx context.Context) string {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		slog.Info(err.Error())
		return ""
	}
	if _, ok := s.platforms.Get(settings.DefaultPlatform); !ok {
		return ""
	}
	return settings.DefaultPlatform
}

func (s *workspaceService) Get(id string) (*models.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workspaces[id]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return w.Clone(), nil
}

func (s *workspaceService) Update(id string, fn func(w *models.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workspaces[id]
	if !ok {
		return ErrWorkspaceNotFound
	}
	w.LastSeen = s.now()
	return fn(w)
}

func (s *workspaceService) TogglePlatform(id, platformID string) (bool, error) {
	if err := s.platforms.Selectable(platformID); err != nil {
		return false, err
	}

	var selected bool
	err := s.Update(id, func(w *models.Workspace) error {
		if w.Posting {
			return ErrPostInFlight
		}
		selected = w.TogglePlatform(platformID)
		return nil
	})
	return selected, err
}

func (s *workspaceService) Notify(id, message string) {
	err := s.Update(id, func(w *models.Workspace) error {
		w.Toasts = append(w.Toasts, message)
		return nil
	})
	if err != nil {
		slog.Info(err.Error())
	}
}

func (s *workspaceService) DrainToasts(id string) []string {
	var toasts []string
	s.Update(id, func(w *models.Workspace) error {
		toasts, w.Toasts = w.Toasts, nil
		return nil
	})
	return toasts
}

func (s *workspaceService) SweepIdle(before time.Time) []*models.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []*models.Workspace
	for id, w := range s.workspaces {
		if w.Posting || !w.LastSeen.Before(before) {
			continue
		}
		removed = append(removed, w)
		delete(s.workspaces, id)
	}
	return removed
}
