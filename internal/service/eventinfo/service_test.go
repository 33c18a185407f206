package eventinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aletbay/summit-concierge/internal/config"
)

func testEvent() config.Event {
	return config.Event{
		Name:      "Staking Summit",
		Venue:     "Haliç Congress Center",
		City:      "Istanbul",
		Timezone:  "Europe/Istanbul",
		StartDate: "2026-11-12",
		EndDate:   "2026-11-13",
		Schedule: []config.ScheduleEntry{
			{Title: "Opening keynote", Stage: "Main Stage", StartsAt: "2026-11-12 10:00"},
			{Title: "Closing party", Stage: "Rooftop", StartsAt: "2026-11-13 19:00"},
		},
	}
}

func setupService(t *testing.T) (*Service, *time.Location) {
	eventLoc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	svc, err := NewService(testEvent(), eventLoc)
	require.NoError(t, err)

	return svc, eventLoc
}

func TestMenu(t *testing.T) {
	svc, _ := setupService(t)

	menu := svc.Menu()

	assert.Contains(t, menu, "Staking Summit")
	assert.Contains(t, menu, "remind me")
	assert.Contains(t, menu, "schedule")
}

func TestInfo(t *testing.T) {
	svc, _ := setupService(t)

	info := svc.Info()

	assert.Contains(t, info, "Haliç Congress Center")
	assert.Contains(t, info, "Istanbul")
	assert.Contains(t, info, "Europe/Istanbul")
}

func TestSchedule_EventZone(t *testing.T) {
	svc, eventLoc := setupService(t)

	schedule := svc.Schedule(eventLoc)

	assert.Contains(t, schedule, "Opening keynote")
	assert.Contains(t, schedule, "Thu, Nov 12 10:00 +03")
	assert.NotContains(t, schedule, "event time")
}

func TestSchedule_UserZone(t *testing.T) {
	svc, _ := setupService(t)

	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	schedule := svc.Schedule(nyc)

	// 10:00 in Istanbul is 02:00 in New York that day.
	assert.Contains(t, schedule, "Thu, Nov 12 02:00 EST")
	assert.Contains(t, schedule, "event time")
}

func TestSchedule_Empty(t *testing.T) {
	eventLoc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	event := testEvent()
	event.Schedule = nil

	svc, err := NewService(event, eventLoc)
	require.NoError(t, err)

	assert.Equal(t, "The schedule has not been published yet.", svc.Schedule(eventLoc))
}

func TestNewService_BadScheduleTime(t *testing.T) {
	eventLoc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	event := testEvent()
	event.Schedule = []config.ScheduleEntry{{Title: "bad", StartsAt: "noonish"}}

	_, err = NewService(event, eventLoc)
	assert.Error(t, err)
}
