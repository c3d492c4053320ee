package models

import (
	"strconv"
	"strings"
)

// PostRecord is one simulated cross-post stored in history. Records are never
// edited after creation; only a full history clear removes them.
type PostRecord struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Platforms []string `json:"platforms"`
	Files     []string `json:"files"`
}

// Matches reports whether the lowercase query is contained in any platform id
// or in the display date.
func (p *PostRecord) Matches(lowerQuery string) bool {
	for _, platform := range p.Platforms {
		if strings.Contains(strings.ToLower(platform), lowerQuery) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Date), lowerQuery)
}

// ShortID is the last four digits of the id, as shown on history cards.
func (p *PostRecord) ShortID() string {
	s := strconv.FormatInt(p.ID, 10)
	if len(s) > 4 {
		return s[len(s)-4:]
	}
	return s
}
