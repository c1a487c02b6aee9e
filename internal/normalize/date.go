package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts are tried in order. Day comes before month wherever both are
// numeric. Month names match case-insensitively.
var dateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2.1.2006",
	"2-1-06",
	"2/1/06",
	"2.1.06",
	"2 Jan 2006",
	"2-Jan-2006",
	"2/Jan/2006",
	"2 Jan, 2006",
	"2 Jan 06",
	"2-Jan-06",
	"2 January 2006",
	"2-January-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"2006/01/02",
	"2006-01-02T15:04:05",
}

var timeSuffix = regexp.MustCompile(`(?i)[ T]\d{1,2}:\d{2}(:\d{2})?(\s*[ap]m)?$`)

// ParseDate parses a statement date. ok is false when no layout matches.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return time.Time{}, false
	}
	for _, candidate := range []string{s, timeSuffix.ReplaceAllString(s, "")} {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return truncateDay(t), true
			}
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
