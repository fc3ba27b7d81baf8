package services

import (
	"strconv"
	"time"
)

// NewRecordID returns a time-based identifier for entries, goals and posts.
// Callers rely on IDs being a creation-order proxy, so this stays time-based,
// at nanosecond resolution. Two writers minting an ID in the same nanosecond
// still collide; acceptable for per-user lists, where a single client writes.
func NewRecordID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
