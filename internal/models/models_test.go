package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPostRecordMatches(t *testing.T) {
	p := &PostRecord{Date: "3/14/2026, 9:26:53 AM", Platforms: []string{"Instagram", "tiktok"}}

	cases := map[string]bool{
		"insta":   true,
		"tiktok":  true,
		"3/14":    true,
		"am":      true,
		"youtube": false,
	}
	for q, want := range cases {
		if got := p.Matches(q); got != want {
			t.Errorf("Matches(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestWorkspaceTogglePlatformKeepsOrder(t *testing.T) {
	w := &Workspace{}
	w.TogglePlatform("youtube")
	w.TogglePlatform("instagram")
	w.TogglePlatform("tiktok")
	if selected := w.TogglePlatform("instagram"); selected {
		t.Fatal("second toggle should deselect")
	}
	if want := []string{"youtube", "tiktok"}; !reflect.DeepEqual(w.Platforms, want) {
		t.Fatalf("Platforms = %v, want %v", w.Platforms, want)
	}
}

func TestWorkspaceCloneIsIndependent(t *testing.T) {
	w := &Workspace{
		Files:     []*UploadedFile{{Name: "a.png"}},
		Platforms: []string{"youtube"},
	}
	c := w.Clone()
	c.Files[0].Name = "b.png"
	c.Platforms[0] = "tiktok"

	if w.Files[0].Name != "a.png" || w.Platforms[0] != "youtube" {
		t.Fatal("clone shares state with original")
	}
}

func TestAnalyticsEngagement(t *testing.T) {
	cases := map[string]string{
		`{"engagement_rate": "4.5%"}`: "4.5%",
		`{"engagement_rate": 4.5}`:    "4.5",
		`{}`:                          "",
	}
	for doc, want := range cases {
		var a Analytics
		if err := json.Unmarshal([]byte(doc), &a); err != nil {
			t.Fatal(err)
		}
		if got := a.Engagement(); got != want {
			t.Errorf("%s: Engagement() = %q, want %q", doc, got, want)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	want := &UserSettings{Name: "User", AutoSave: true, Notifications: true, Privacy: "public"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("DefaultSettings() = %+v", s)
	}
}

func TestPostRecordShortID(t *testing.T) {
	cases := map[int64]string{1760000123456: "3456", 42: "42", 1000: "1000"}
	for id, want := range cases {
		if got := (&PostRecord{ID: id}).ShortID(); got != want {
			t.Errorf("ShortID(%d) = %q, want %q", id, got, want)
		}
	}
}
