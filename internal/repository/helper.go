package repository

import (
	"encoding/base64"
	"strings"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999Z07:00" // reduce precision from RFC3339Nano as date format

	DefaultPageNum = 10
	MaxPageNum     = 100
)

const cursorSep = "|"

// DecodeCursor will decode cursor from user. It yields the creation time and
// id of the last item already seen; the next page starts strictly after that
// (createdAt, id) pair. A cursor carrying only a time decodes with an empty id.
func DecodeCursor(encoded string) (time.Time, string, error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, "", err
	}

	timeString, id, _ := strings.Cut(string(byt), cursorSep)
	t, err := time.Parse(timeFormat, timeString)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, id, nil
}

// EncodeCursor will encode the position of the last item on a page
func EncodeCursor(t time.Time, id string) string {
	raw := t.Format(timeFormat) + cursorSep + id

	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// AfterCursor reports whether (createdAt, id) sorts after the cursor position
func AfterCursor(createdAt time.Time, id string, cursorTime time.Time, cursorID string) bool {
	if createdAt.Equal(cursorTime) {
		return id > cursorID
	}
	return createdAt.After(cursorTime)
}

// PageVerify clamps the page size into (0, MaxPageNum]
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num > MaxPageNum {
		*num = MaxPageNum
	}
}
