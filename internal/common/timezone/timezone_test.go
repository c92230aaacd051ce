package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRendersJakartaOffset(t *testing.T) {
	// 02:00 UTC is 09:00 in Jakarta
	instant := time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10 09:00:00+07:00", Format(instant))
	assert.Equal(t, "09:00:00", FormatClock(instant))
}

func TestFormatCrossesDateBoundary(t *testing.T) {
	// Late UTC evening is already the next calendar day in Jakarta
	instant := time.Date(2024, 1, 9, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10 01:30:00+07:00", Format(instant))
}
