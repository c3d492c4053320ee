package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/internal/service"
)

// WorkspaceSweepJob forgets workspaces that have been idle longer than ttl and
// deletes the media they were still holding.
type WorkspaceSweepJob struct {
	ws  service.WorkspaceService
	us  service.UploadService
	ttl time.Duration
	now service.Clock
}

func NewWorkspaceSweepJob(ws service.WorkspaceService, us service.UploadService, ttl time.Duration, now service.Clock) *WorkspaceSweepJob {
	return &WorkspaceSweepJob{
		ws:  ws,
		us:  us,
		ttl: ttl,
		now: now,
	}
}

func (j *WorkspaceSweepJob) SweepWorkspaces() {
	ctx := context.Background()

	removed := j.ws.SweepIdle(j.now().Add(-j.ttl))
	if len(removed) == 0 {
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, w := range removed {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(w *models.Workspace) {
			defer wg.Done()
			defer func() { <-semaphore }()

			j.us.Discard(ctx, w.MediaIDs())
		}(w)
	}

	wg.Wait()
	slog.Info("Swept idle workspaces", "count", len(removed))
}
