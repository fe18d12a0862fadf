package utils

import (
	"strings"
	"time"
)

// Korea Standard Time (KST, +09:00)
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

func KST() *time.Location { return kstLoc }

// FromUnixAutoKST converts an epoch value of unknown unit (s/ms/us/ns) to KST.
func FromUnixAutoKST(x int64) time.Time {
	if x <= 0 {
		return time.Time{}
	}
	switch {
	case x < 1e11:
		return time.Unix(x, 0).In(kstLoc)
	case x < 1e14:
		return time.Unix(x/1e3, (x%1e3)*1e6).In(kstLoc)
	case x < 1e17:
		return time.Unix(x/1e6, (x%1e6)*1e3).In(kstLoc)
	default:
		return time.Unix(x/1e9, x%1e9).In(kstLoc)
	}
}

func FormatRFC3339KST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format(time.RFC3339)
}

// ParseDateKST parses a YYYY-MM-DD calendar date at KST midnight.
func ParseDateKST(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), kstLoc)
}

// ParseCompactDateKST parses the YYYYMMDD form used by blog search results.
// It returns the zero time for anything else.
func ParseCompactDateKST(s string) time.Time {
	t, err := time.ParseInLocation("20060102", strings.TrimSpace(s), kstLoc)
	if err != nil {
		return time.Time{}
	}
	return t
}
