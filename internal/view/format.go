package view

import (
	"strconv"
	"time"
)

// Date renders "Jan 02, 2006"; nil or zero times render empty.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006")
}

func DateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006 15:04")
}

func MonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2006")
}

func Rate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
