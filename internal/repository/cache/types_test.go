package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntry_IsLogicalExpired(t *testing.T) {
	fresh := NewEntry("x", time.Minute)
	assert.False(t, fresh.IsLogicalExpired())
	assert.Equal(t, "x", fresh.Data)

	stale := NewEntry(42, -time.Second)
	assert.True(t, stale.IsLogicalExpired())
}
