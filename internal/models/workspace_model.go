package models

import (
	"slices"
	"time"
)

const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
)

type UploadedFile struct {
	MediaID     string `json:"media_id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	Kind        string `json:"kind"`
	URL         string `json:"url"`
}

// Workspace is the transient dashboard state of one browser session: the
// chosen files, the selected platforms and whether a post is in flight.
type Workspace struct {
	ID        string          `json:"id"`
	Files     []*UploadedFile `json:"files"`
	Platforms []string        `json:"platforms"`
	Posting   bool            `json:"posting"`
	Toasts    []string        `json:"-"`
	LastSeen  time.Time       `json:"-"`
}

func (w *Workspace) HasPlatform(id string) bool {
	return slices.Contains(w.Platforms, id)
}

// TogglePlatform flips membership of id and reports whether it is now selected.
// Selection keeps insertion order.
func (w *Workspace) TogglePlatform(id string) bool {
	if i := slices.Index(w.Platforms, id); i >= 0 {
		w.Platforms = slices.Delete(w.Platforms, i, i+1)
		return false
	}
	w.Platforms = append(w.Platforms, id)
	return true
}

func (w *Workspace) FileNames() []string {
	names := make([]string, 0, len(w.Files))
	for _, f := range w.Files {
		names = append(names, f.Name)
	}
	return names
}

func (w *Workspace) MediaIDs() []string {
	ids := make([]string, 0, len(w.Files))
	for _, f := range w.Files {
		ids = append(ids, f.MediaID)
	}
	return ids
}

// Clone returns a copy that shares no slices with w.
func (w *Workspace) Clone() *Workspace {
	c := *w
	c.Files = make([]*UploadedFile, 0, len(w.Files))
	for _, f := range w.Files {
		fc := *f
		c.Files = append(c.Files, &fc)
	}
	c.Platforms = slices.Clone(w.Platforms)
	c.Toasts = slices.Clone(w.Toasts)
	return &c
}
