package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/internal/repository"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

const postedMessage = "Content posted successfully!"

// Dispatcher runs an accepted post after delay. It returns an id that
// identifies the pending task.
type Dispatcher interface {
	Dispatch(ctx context.Context, task transfer.PostTask, delay time.Duration) (string, error)
}

type PostService interface {
	// Submit validates the workspace selection and schedules the simulated post.
	Submit(ctx context.Context, workspaceID string) (string, error)
	// Complete records the post once the delay has elapsed.
	Complete(ctx context.Context, task transfer.PostTask) (*models.PostRecord, error)
}

type postService struct {
	history    repository.HistoryRepository
	settings   SettingsService
	ws         WorkspaceService
	platforms  PlatformService
	uploads    UploadService
	dispatcher Dispatcher
	delay      time.Duration
	now        Clock
}

func NewPostService(
	history repository.HistoryRepository,
	settings SettingsService,
	ws WorkspaceService,
	platforms PlatformService,
	uploads UploadService,
	dispatcher Dispatcher,
	delay time.Duration,
	now Clock) PostService {
	return &postService{
		history:    history,
		settings:   settings,
		ws:         ws,
		platforms:  platforms,
		uploads:    uploads,
		dispatcher: dispatcher,
		delay:      delay,
		now:        now,
	}
}

func (s *postService) Submit(ctx context.Context, workspaceID string) (string, error) {
	var task transfer.PostTask
	err := s.ws.Update(workspaceID, func(w *models.Workspace) error {
		if w.Posting {
			return ErrPostInFlight
		}
		if len(w.Files) == 0 {
			return ErrNoFiles
		}
		if len(w.Platforms) == 0 {
			return ErrNoPlatforms
		}
		w.Posting = true
		task = transfer.PostTask{
			WorkspaceID: w.ID,
			Platforms:   append([]string(nil), w.Platforms...),
			Files:       w.FileNames(),
			MediaIDs:    w.MediaIDs(),
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	taskID, err := s.dispatcher.Dispatch(ctx, task, s.delay)
	if err != nil {
		slog.Error(err.Error())
		s.ws.Update(workspaceID, func(w *models.Workspace) error {
			w.Posting = false
			return nil
		})
		return "", fmt.Errorf("error scheduling post: %w", err)
	}

	return taskID, nil
}

func (s *postService) Complete(ctx context.Context, task transfer.PostTask) (*models.PostRecord, error) {
	now := s.now()
	record := &models.PostRecord{
		ID:        now.UnixMilli(),
		Date:      FormatDisplayDate(now),
		Platforms: task.Platforms,
		Files:     task.Files,
	}

	if err := s.history.Prepend(ctx, record); err != nil {
		s.ws.Update(task.WorkspaceID, func(w *models.Workspace) error {
			w.Posting = false
			w.Toasts = append(w.Toasts, "Unable to save post history")
			return nil
		})
		return nil, fmt.Errorf("error saving post history: %w", err)
	}

	reselect := s.defaultPlatform(ctx)
	err := s.ws.Update(task.WorkspaceID, func(w *models.Workspace) error {
		w.Files = nil
		w.Platforms = nil
		if reselect != "" {
			w.Platforms = []string{reselect}
		}
		w.Posting = false
		w.Toasts = append(w.Toasts, postedMessage)
		return nil
	})
	if err != nil {
		slog.Info(fmt.Sprintf("Post %d recorded for an expired workspace: %v", record.ID, err))
	}

	s.uploads.Discard(ctx, task.MediaIDs)
	return record, nil
}

func (s *postService) defaultPlatform(ctx context.Context) string {
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
