package cache

import "time"

// Entry wraps cached data with a logical expiry. The redis key itself never
// expires, so a stale entry can still be served while it is rebuilt.
type Entry[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsLogicalExpired reports whether the entry is past its logical expiry
func (e *Entry[T]) IsLogicalExpired() bool {
	return time.Now().After(e.ExpireAt)
}

// NewEntry wraps data with an expiry ttl from now
func NewEntry[T any](data T, ttl time.Duration) *Entry[T] {
	now := time.Now()
	return &Entry[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
