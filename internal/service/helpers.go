package service

import (
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time

const displayDateLayout = "1/2/2006, 3:04:05 PM"

func FormatDisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from user supplied text and keeps the plain text.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
