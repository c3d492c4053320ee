package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/maheshrc27/crosspost/internal/repository"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeDispatcher struct {
	tasks []transfer.PostTask
	delay time.Duration
	err   error
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, task transfer.PostTask, delay time.Duration) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.tasks = append(d.tasks, task)
	d.delay = delay
	return fmt.Sprintf("task-%d", len(d.tasks)), nil
}

type testEnv struct {
	store      repository.KVStore
	history    repository.HistoryRepository
	settings   SettingsService
	platforms  PlatformService
	workspaces WorkspaceService
	uploads    UploadService
	posts      PostService
	dispatcher *fakeDispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	media, err := NewLocalMediaStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	e := &testEnv{store: repository.NewMemoryStore(), dispatcher: &fakeDispatcher{}}
	e.history = repository.NewHistoryRepository(e.store)
	e.settings = NewSettingsService(repository.NewSettingsRepository(e.store))
	e.platforms = NewPlatformService([]string{"instagram", "tiktok", "youtube"})
	e.workspaces = NewWorkspaceService(e.settings, e.platforms, fixedClock)
	e.uploads = NewUploadService(e.workspaces, media)
	e.posts = NewPostService(e.history, e.settings, e.workspaces, e.platforms, e.uploads, e.dispatcher, 1500*time.Millisecond, fixedClock)
	return e
}

type testFile struct {
	name        string
	contentType string
	data        []byte
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		part.Write(f.data)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form.File["files"]
}

func assertErr(t *testing.T, got, want error) {
	t.Helper()
	if !errors.Is(got, want) {
		t.Fatalf("err = %v, want %v", got, want)
	}
}
