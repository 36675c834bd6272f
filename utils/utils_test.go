package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "3h 20m", FormatDuration(200))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Free", FormatPrice(0))
	assert.Equal(t, "$49.99", FormatPrice(49.99))
}

func TestPostedThisWeek(t *testing.T) {
	assert.True(t, PostedThisWeek(time.Now()))
	assert.False(t, PostedThisWeek(time.Now().AddDate(0, 0, -8)))
}
