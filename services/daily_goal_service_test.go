package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPct(t *testing.T) {
	assert.Equal(t, 0.5, progressPct(1000, 2000))
	assert.Equal(t, 1.0, progressPct(2500, 2000), "progress caps at 100%")
	assert.Equal(t, 0.0, progressPct(500, 0), "zero target reports no progress")
}
