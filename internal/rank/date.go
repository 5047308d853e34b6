// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"strings"
	"time"
)

// DateKind tags the outcome of parsing a publication date.
type DateKind int

const (
	// DateMissing means the record carried no date at all.
	DateMissing DateKind = iota
	// DateUnparseable means a date was present but matched no known layout.
	DateUnparseable
	// DateTimestamp means the value carried a time of day (RFC 3339 or naive).
	DateTimestamp
	// DateCalendar means the value was a plain YYYY-MM-DD date.
	DateCalendar
)

func (k DateKind) String() string {
	switch k {
	case DateMissing:
		return "missing"
	case DateUnparseable:
		return "unparseable"
	case DateTimestamp:
		return "timestamp"
	case DateCalendar:
		return "calendar"
	}
	return "unknown"
}

// PubDate is a parsed publication date. Time is meaningful only when OK
// reports true.
type PubDate struct {
	Time time.Time
	Kind DateKind
}

// OK reports whether the date parsed.
func (d PubDate) OK() bool {
	return d.Kind == DateTimestamp || d.Kind == DateCalendar
}

// timestampLayouts are tried in order for values that carry a time of day.
// Values without a zone are read as UTC.
// Fractional seconds are accepted after the seconds field by every layout.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// calendarLayouts accept zero-padded and unpadded month and day.
var calendarLayouts = []string{
	"2006-01-02",
	"2006-1-2",
}

// ParseDate reads a publication date in any of the encodings sources use.
// It never fails: bad input is reported through the returned Kind.
func ParseDate(raw string) PubDate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PubDate{Kind: DateMissing}
	}

	if strings.Contains(raw, "T") {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return PubDate{Time: t, Kind: DateTimestamp}
			}
		}
		return PubDate{Kind: DateUnparseable}
	}

	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return PubDate{Time: t, Kind: DateCalendar}
		}
	}
	return PubDate{Kind: DateUnparseable}
}

// ageInDays returns the whole days elapsed from published to now, rounded
// toward negative infinity. Future dates yield a negative age.
func ageInDays(now, published time.Time) int {
	d := now.Sub(published)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}
