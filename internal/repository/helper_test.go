package repository

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 4, 10, 11, 12, 345000000, time.UTC)
	gotTime, gotID, err := DecodeCursor(EncodeCursor(ts, "item-7"))
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTime), "want %v, got %v", ts, gotTime)
	assert.Equal(t, "item-7", gotID)
}

func TestDecodeCursor_TimeOnly(t *testing.T) {
	ts := time.Date(2025, 3, 4, 10, 11, 12, 0, time.UTC)
	raw := base64.StdEncoding.EncodeToString([]byte(ts.Format(timeFormat)))
	gotTime, gotID, err := DecodeCursor(raw)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTime))
	assert.Empty(t, gotID)
}

func TestAfterCursor(t *testing.T) {
	ts := time.Date(2025, 3, 4, 10, 11, 12, 0, time.UTC)
	assert.True(t, AfterCursor(ts.Add(time.Millisecond), "a", ts, "z"))
	assert.True(t, AfterCursor(ts, "b", ts, "a"))
	assert.False(t, AfterCursor(ts, "a", ts, "a"))
	assert.False(t, AfterCursor(ts.Add(-time.Millisecond), "z", ts, "a"))
}

func TestDecodeCursor_Invalid(t *testing.T) {
	_, _, err := DecodeCursor("%%%")
	assert.Error(t, err)
}

func TestPageVerify(t *testing.T) {
	for in, want := range map[int64]int64{-1: DefaultPageNum, 0: DefaultPageNum, 7: 7, 1000: MaxPageNum} {
		num := in
		PageVerify(&num)
		assert.Equal(t, want, num, "input %d", in)
	}
}
