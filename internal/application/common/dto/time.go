// Package dto provides common data transfer objects shared across domains.
package dto

import "time"

// isoTimeLayout matches the wire format for timestamps: UTC ISO-8601 with
// millisecond precision and a literal Z suffix.
const isoTimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders a timestamp in the wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(isoTimeLayout)
}
