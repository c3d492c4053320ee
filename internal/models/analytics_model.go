package models

import (
	"encoding/json"
	"strings"
)

// Analytics mirrors the static analytics document.
type Analytics struct {
	TotalReach     float64         `json:"total_reach"`
	EngagementRate json.RawMessage `json:"engagement_rate"`
	WeeklyStats    []float64       `json:"weekly_stats"`
}

// Engagement returns the engagement rate as it should be displayed: strings
// unquoted, numbers verbatim.
func (a *Analytics) Engagement() string {
	raw := strings.TrimSpace(string(a.EngagementRate))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(a.EngagementRate, &s); err == nil {
		return s
	}
	return raw
}
