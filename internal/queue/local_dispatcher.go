package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/crosspost/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrDispatcherStopped = errors.New("dispatcher is stopped")

// LocalDispatcher runs simulated posts in process on cancellable timers. It
// is used when no Redis is configured.
type LocalDispatcher struct {
	mu      sync.Mutex
	handler func(ctx context.Context, payload transfer.PostTask) error
	timers  map[string]*time.Timer
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped bool
}

func NewLocalDispatcher() *LocalDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &LocalDispatcher{
		timers: make(map[string]*time.Timer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Bind sets the function run when a task's delay elapses.
func (d *LocalDispatcher) Bind(handler func(ctx context.Context, payload transfer.PostTask) error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = handler
}

func (d *LocalDispatcher) Dispatch(ctx context.Context, payload transfer.PostTask, delay time.Duration) (string, error) {
	taskID, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return "", ErrDispatcherStopped
	}
	if d.handler == nil {
		return "", errors.New("dispatcher has no handler")
	}

	d.wg.Add(1)
	d.timers[taskID] = time.AfterFunc(delay, func() {
		defer d.wg.Done()
		if !d.take(taskID) {
			return
		}
		if err := d.handler(d.ctx, payload); err != nil {
			slog.Info(err.Error())
		}
	})

	return taskID, nil
}

// take claims the task for execution; false means it was cancelled.
func (d *LocalDispatcher) take(taskID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.timers[taskID]; !ok {
		return false
	}
	delete(d.timers, taskID)
	return true
}

// Cancel stops a pending task. It reports false when the task already ran or
// does not exist.
func (d *LocalDispatcher) Cancel(taskID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.timers[taskID]
	if !ok {
		return false
	}
	delete(d.timers, taskID)
	if t.Stop() {
		d.wg.Done()
	}
	return true
}

func (d *LocalDispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop cancels every pending task and waits for running ones to return.
func (d *LocalDispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}
