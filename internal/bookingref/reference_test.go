package bookingref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive_Deterministic(t *testing.T) {
	first := Derive("truck-1", "load-1")
	second := Derive("truck-1", "load-1")
	assert.Equal(t, first, second)
}

func TestDerive_Format(t *testing.T) {
	ref := Derive("a3f1c9e2", "b7d402aa")
	assert.True(t, strings.HasPrefix(ref, "BKG-"))
	assert.Len(t, ref, len("BKG-")+8)
	assert.Equal(t, strings.ToUpper(ref), ref)
}

func TestDerive_DistinctPairs(t *testing.T) {
	assert.NotEqual(t, Derive("truck-1", "load-1"), Derive("truck-1", "load-2"))
	assert.NotEqual(t, Derive("truck-1", "load-1"), Derive("truck-2", "load-1"))
}

func TestDerive_OrderSensitive(t *testing.T) {
	// Caller-supplied order is part of the input, same as the concatenation
	// the reference format is built from.
	assert.NotEqual(t, Derive("x", "y"), Derive("y", "x"))
}
