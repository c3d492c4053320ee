package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/internal/repository"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

func TestSubmitWithoutFilesWritesNothing(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")
	e.workspaces.TogglePlatform("ws1", "youtube")

	_, err := e.posts.Submit(ctx, "ws1")
	assertErr(t, err, ErrNoFiles)

	if len(e.dispatcher.tasks) != 0 {
		t.Fatal("rejected post was dispatched")
	}
	if _, ok, _ := e.store.Get(ctx, repository.HistoryKey); ok {
		t.Fatal("rejected post wrote history")
	}
	if w, _ := e.workspaces.Get("ws1"); w.Posting {
		t.Fatal("rejected post left workspace posting")
	}
}

func TestSubmitWithoutPlatformsWritesNothing(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")
	e.uploads.Add(ctx, "ws1", fileHeaders(t, testFile{name: "a.png", contentType: "image/png", data: pngBytes}))

	_, err := e.posts.Submit(ctx, "ws1")
	assertErr(t, err, ErrNoPlatforms)

	if len(e.dispatcher.tasks) != 0 {
		t.Fatal("rejected post was dispatched")
	}
	if _, ok, _ := e.store.Get(ctx, repository.HistoryKey); ok {
		t.Fatal("rejected post wrote history")
	}
	if w, _ := e.workspaces.Get("ws1"); len(w.Files) != 1 {
		t.Fatal("rejected post changed the selection")
	}
}

func TestSubmitAndComplete(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.settings.Save(ctx, &transfer.SettingsUpdate{DefaultPlatform: "instagram"})
	e.workspaces.Ensure(ctx, "ws1")
	e.uploads.Add(ctx, "ws1", fileHeaders(t,
		testFile{name: "a.png", contentType: "image/png", data: pngBytes},
		testFile{name: "b.png", contentType: "image/png", data: pngBytes},
	))
	e.workspaces.TogglePlatform("ws1", "tiktok")

	taskID, err := e.posts.Submit(ctx, "ws1")
	if err != nil {
		t.Fatal(err)
	}
	if taskID == "" || len(e.dispatcher.tasks) != 1 {
		t.Fatalf("task %q, dispatched %d", taskID, len(e.dispatcher.tasks))
	}
	if e.dispatcher.delay != 1500*time.Millisecond {
		t.Fatalf("delay = %v", e.dispatcher.delay)
	}

	_, err = e.posts.Submit(ctx, "ws1")
	assertErr(t, err, ErrPostInFlight)
	_, err = e.workspaces.TogglePlatform("ws1", "youtube")
	assertErr(t, err, ErrPostInFlight)

	task := e.dispatcher.tasks[0]
	record, err := e.posts.Complete(ctx, task)
	if err != nil {
		t.Fatal(err)
	}

	want := &models.PostRecord{
		ID:        fixedNow.UnixMilli(),
		Date:      "3/14/2026, 9:26:53 AM",
		Platforms: []string{"instagram", "tiktok"},
		Files:     []string{"a.png", "b.png"},
	}
	if !reflect.DeepEqual(record, want) {
		t.Fatalf("record = %+v, want %+v", record, want)
	}

	records, _ := e.history.List(ctx)
	if len(records) != 1 || !reflect.DeepEqual(records[0], want) {
		t.Fatalf("history = %+v", records)
	}

	w, _ := e.workspaces.Get("ws1")
	if w.Posting || len(w.Files) != 0 {
		t.Fatalf("workspace not reset: %+v", w)
	}
	if !reflect.DeepEqual(w.Platforms, []string{"instagram"}) {
		t.Fatalf("default platform not reselected: %v", w.Platforms)
	}
	if toasts := e.workspaces.DrainToasts("ws1"); !reflect.DeepEqual(toasts, []string{"Content posted successfully!"}) {
		t.Fatalf("toasts = %v", toasts)
	}
}

func TestCompletePrependsNewestFirst(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.posts.Complete(ctx, transfer.PostTask{WorkspaceID: "gone", Platforms: []string{"youtube"}, Files: []string{"1.mp4"}})
	e.posts.Complete(ctx, transfer.PostTask{WorkspaceID: "gone", Platforms: []string{"tiktok"}, Files: []string{"2.mp4"}})

	records, _ := e.history.List(ctx)
	if len(records) != 2 || records[0].Files[0] != "2.mp4" {
		t.Fatalf("history = %+v", records)
	}
}

func TestSubmitDispatchFailureReleasesWorkspace(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.dispatcher.err = errors.New("queue down")
	e.workspaces.Ensure(ctx, "ws1")
	e.uploads.Add(ctx, "ws1", fileHeaders(t, testFile{name: "a.png", contentType: "image/png", data: pngBytes}))
	e.workspaces.TogglePlatform("ws1", "youtube")

	if _, err := e.posts.Submit(ctx, "ws1"); err == nil {
		t.Fatal("expected dispatch error")
	}
	if w, _ := e.workspaces.Get("ws1"); w.Posting {
		t.Fatal("workspace stuck in posting state")
	}
}
