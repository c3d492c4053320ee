package service

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/maheshrc27/crosspost/internal/models"
)

func TestUploadAddDetectsKinds(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")

	files, err := e.uploads.Add(ctx, "ws1", fileHeaders(t,
		testFile{name: "cover.png", contentType: "application/octet-stream", data: pngBytes},
		testFile{name: "clip.mov", contentType: "video/quicktime", data: []byte("not really a movie")},
	))
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files", len(files))
	}
	if files[0].Kind != models.MediaKindImage || files[0].ContentType != "image/png" {
		t.Errorf("cover.png = %+v", files[0])
	}
	if files[1].Kind != models.MediaKindVideo {
		t.Errorf("clip.mov kind = %q", files[1].Kind)
	}
	if files[0].Size != int64(len(pngBytes)) {
		t.Errorf("size = %d", files[0].Size)
	}

	w, _ := e.workspaces.Get("ws1")
	if !reflect.DeepEqual(w.FileNames(), []string{"cover.png", "clip.mov"}) {
		t.Fatalf("workspace files = %v", w.FileNames())
	}
}

func TestUploadNewBatchReplacesList(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")

	e.uploads.Add(ctx, "ws1", fileHeaders(t, testFile{name: "a.png", contentType: "image/png", data: pngBytes}))
	e.uploads.Add(ctx, "ws1", fileHeaders(t, testFile{name: "b.png", contentType: "image/png", data: pngBytes}))

	w, _ := e.workspaces.Get("ws1")
	if !reflect.DeepEqual(w.FileNames(), []string{"b.png"}) {
		t.Fatalf("workspace files = %v", w.FileNames())
	}
}

func TestUploadEmptyBatchIsNoop(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")
	e.uploads.Add(ctx, "ws1", fileHeaders(t, testFile{name: "a.png", contentType: "image/png", data: pngBytes}))

	files, err := e.uploads.Add(ctx, "ws1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name != "a.png" {
		t.Fatalf("files = %+v", files)
	}
}

func TestUploadRemoveByName(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")
	e.uploads.Add(ctx, "ws1", fileHeaders(t,
		testFile{name: "a.png", contentType: "image/png", data: pngBytes},
		testFile{name: "b.png", contentType: "image/png", data: pngBytes},
		testFile{name: "a.png", contentType: "image/png", data: pngBytes},
	))

	if err := e.uploads.Remove(ctx, "ws1", "a.png"); err != nil {
		t.Fatal(err)
	}
	if err := e.uploads.Remove(ctx, "ws1", "missing.png"); err != nil {
		t.Fatal(err)
	}

	w, _ := e.workspaces.Get("ws1")
	if !reflect.DeepEqual(w.FileNames(), []string{"b.png"}) {
		t.Fatalf("workspace files = %v", w.FileNames())
	}
}

func TestLocalMediaStorage(t *testing.T) {
	dir := t.TempDir()
	media, err := NewLocalMediaStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	url, err := media.Save(ctx, "abc.png", pngBytes, "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if url != "/media/abc.png" {
		t.Fatalf("url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "abc.png")); err != nil {
		t.Fatal(err)
	}
	if err := media.Delete(ctx, "abc.png"); err != nil {
		t.Fatal(err)
	}
	if err := media.Delete(ctx, "abc.png"); err != nil {
		t.Fatalf("deleting a missing file: %v", err)
	}
}

func TestDisplayFileName(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":            "photo.jpg",
		"C:\\Users\\me\\a.png": "a.png",
		"../../etc/passwd":     "passwd",
		"<intro>.mp4":          "<intro>.mp4",
		"a<b>c.png":            "a<b>c.png",
		"":                     "untitled",
	}
	for in, want := range cases {
		if got := displayFileName(in); got != want {
			t.Errorf("displayFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUploadKeepsMarkupLikeNamesDistinct(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.workspaces.Ensure(ctx, "ws1")

	_, err := e.uploads.Add(ctx, "ws1", fileHeaders(t,
		testFile{name: "a<b>c.png", contentType: "image/png", data: pngBytes},
		testFile{name: "ac.png", contentType: "image/png", data: pngBytes},
	))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.uploads.Remove(ctx, "ws1", "ac.png"); err != nil {
		t.Fatal(err)
	}

	w, _ := e.workspaces.Get("ws1")
	if !reflect.DeepEqual(w.FileNames(), []string{"a<b>c.png"}) {
		t.Fatalf("workspace files = %v", w.FileNames())
	}
}
