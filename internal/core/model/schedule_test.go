package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayValid(t *testing.T) {
	assert.True(t, TimeOfDay{}.Valid())
	assert.True(t, TimeOfDay{Hour: 23, Minute: 59}.Valid())
	assert.False(t, TimeOfDay{Hour: 24}.Valid())
	assert.False(t, TimeOfDay{Minute: 60}.Valid())
	assert.False(t, TimeOfDay{Hour: -1}.Valid())
}

func TestTimeOfDayAtKeepsLocation(t *testing.T) {
	date := time.Date(2026, 3, 10, 15, 30, 45, 0, time.UTC)
	anchored := TimeOfDay{Hour: 9, Minute: 5}.At(date)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC), anchored)
	assert.Equal(t, time.UTC, anchored.Location())
}

func TestEventKindLabel(t *testing.T) {
	assert.Equal(t, "Clock In", EventClockIn.Label())
	assert.Equal(t, "Clock Out", EventClockOut.Label())
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "00:00", TimeOfDay{}.String())
}
