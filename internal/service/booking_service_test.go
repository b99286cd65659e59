package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNumberPattern = regexp.MustCompile(`^ZF\d{14}[0-9A-F]{6}$`)

func TestGenerateBookingNumberFormat(t *testing.T) {
	n := generateBookingNumber()
	require.Regexp(t, bookingNumberPattern, n)
	assert.Len(t, n, 22)
}

func TestGenerateBookingNumberDistinct(t *testing.T) {
	// The random suffix keeps same-second collisions unlikely; the DB
	// unique constraint covers the rest.
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		n := generateBookingNumber()
		_, dup := seen[n]
		require.False(t, dup, "duplicate booking number %s", n)
		seen[n] = struct{}{}
	}
}
