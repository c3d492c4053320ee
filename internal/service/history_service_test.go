package service

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/maheshrc27/crosspost/internal/models"
)

func seedHistory(t *testing.T, e *testEnv) []*models.PostRecord {
	t.Helper()
	records := []*models.PostRecord{
		{ID: 1700000000001, Date: "11/14/2023, 10:13:20 PM", Platforms: []string{"youtube"}, Files: []string{"a.mp4"}},
		{ID: 1700000000002, Date: "11/15/2023, 8:00:00 AM", Platforms: []string{"Instagram", "tiktok"}, Files: []string{"b.png"}},
		{ID: 1700000000003, Date: "12/1/2023, 9:30:00 AM", Platforms: []string{"tiktok"}, Files: []string{"c.png"}},
		{ID: 1700000000004, Date: "1/2/2024, 1:00:00 PM", Platforms: []string{"instagram"}, Files: []string{"d.png"}},
	}
	for _, r := range records {
		if err := e.history.Prepend(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}
	return records
}

func ids(records []*models.PostRecord) []int64 {
	out := []int64{}
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestHistoryRecent(t *testing.T) {
	e := newTestEnv(t)
	seedHistory(t, e)
	hs := NewHistoryService(e.history, fixedClock)

	recent, err := hs.Recent(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{1700000000004, 1700000000003, 1700000000002}; !reflect.DeepEqual(ids(recent), want) {
		t.Fatalf("Recent = %v, want %v", ids(recent), want)
	}
}

func TestHistoryFilter(t *testing.T) {
	e := newTestEnv(t)
	seedHistory(t, e)
	hs := NewHistoryService(e.history, fixedClock)
	ctx := context.Background()

	cases := map[string][]int64{
		"":          {1700000000004, 1700000000003, 1700000000002, 1700000000001},
		"INSTAGRAM": {1700000000004, 1700000000002},
		"tik":       {1700000000003, 1700000000002},
		"11/1":      {1700000000002, 1700000000001},
		"pm":        {1700000000004, 1700000000001},
		"facebook":  {},
	}
	for q, want := range cases {
		got, err := hs.Filter(ctx, q)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Errorf("Filter(%q) = %v, want %v", q, ids(got), want)
		}
	}
}

func TestHistoryExport(t *testing.T) {
	e := newTestEnv(t)
	hs := NewHistoryService(e.history, fixedClock)
	ctx := context.Background()

	if _, err := hs.Export(ctx); err != ErrEmptyHistory {
		t.Fatalf("empty export err = %v", err)
	}

	records := seedHistory(t, e)
	export, err := hs.Export(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if export.FileName != "crosspost-history-2026-03-14.json" {
		t.Fatalf("FileName = %q", export.FileName)
	}
	if !strings.Contains(string(export.Data), "\n  {\n    \"id\": 1700000000004,") {
		t.Fatalf("export is not pretty printed:\n%s", export.Data)
	}

	var decoded []*models.PostRecord
	if err := json.Unmarshal(export.Data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("exported %d records", len(decoded))
	}
}

func TestHistoryClear(t *testing.T) {
	e := newTestEnv(t)
	seedHistory(t, e)
	hs := NewHistoryService(e.history, fixedClock)
	ctx := context.Background()

	if err := hs.Clear(ctx, false); err != ErrConfirmationRequired {
		t.Fatalf("unconfirmed clear err = %v", err)
	}
	if records, _ := hs.List(ctx); len(records) != 4 {
		t.Fatal("unconfirmed clear removed history")
	}

	for i := 0; i < 2; i++ {
		if err := hs.Clear(ctx, true); err != nil {
			t.Fatal(err)
		}
	}
	if records, _ := hs.List(ctx); len(records) != 0 {
		t.Fatalf("history after clear = %v", records)
	}
}

func TestHistoryFeed(t *testing.T) {
	e := newTestEnv(t)
	seedHistory(t, e)
	hs := NewHistoryService(e.history, fixedClock)

	rss, err := hs.Feed(context.Background(), "http://localhost:3000/")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>Crosspost history</title>", "Post #0004", "Posted to Instagram, tiktok: b.png", "http://localhost:3000/?view=history"} {
		if !strings.Contains(rss, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}
