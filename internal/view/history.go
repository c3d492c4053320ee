package view

import "github.com/maheshrc27/crosspost/internal/models"

const (
	EmptyRecent   = "No recent posts"
	EmptyHistory  = "No history found"
	EmptyFiltered = "No matching history found"
)

type HistoryItem struct {
	ID        int64
	Label     string
	Date      string
	Platforms []string
}

// HistoryList is one rendered history panel. Empty is set only when Items is
// empty.
type HistoryList struct {
	Items []HistoryItem
	Empty string
}

func NewHistoryItem(p *models.PostRecord) HistoryItem {
	return HistoryItem{
		ID:        p.ID,
		Label:     "Post #" + p.ShortID(),
		Date:      p.Date,
		Platforms: p.Platforms,
	}
}

func NewHistoryList(records []*models.PostRecord, empty string) HistoryList {
	list := HistoryList{Items: make([]HistoryItem, 0, len(records))}
	for _, r := range records {
		list.Items = append(list.Items, NewHistoryItem(r))
	}
	if len(list.Items) == 0 {
		list.Empty = empty
	}
	return list
}

// DashboardHistory shows the newest n records.
func DashboardHistory(records []*models.PostRecord, n int) HistoryList {
	if len(records) > n {
		records = records[:n]
	}
	return NewHistoryList(records, EmptyRecent)
}

// FullHistory renders the history view, filtered by query when it is set.
func FullHistory(records []*models.PostRecord, query string) HistoryList {
	if query != "" {
		return NewHistoryList(records, EmptyFiltered)
	}
	return NewHistoryList(records, EmptyHistory)
}
