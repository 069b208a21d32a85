package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemClockNonDecreasing(t *testing.T) {
	clock := NewSystemClock()

	prev := clock.Now()
	for range 1000 {
		now := clock.Now()
		assert.False(t, now.Before(prev), "clock went backwards")
		prev = now
	}
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "conflict", errorKind(&ConflictError{}))
	assert.Equal(t, "transport", errorKind(&TransportError{Op: "download-changes"}))
	assert.Equal(t, "stale_write", errorKind(ErrStaleWrite))
	assert.Equal(t, "validation", errorKind(ErrValidation))
	assert.Equal(t, "auth", errorKind(ErrAuth))
	assert.Equal(t, "internal", errorKind(assert.AnError))
}
