package eventinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/aletbay/summit-concierge/internal/config"
)

const scheduleTimeFormat = "Mon, Jan 2 15:04 MST"

// Entry is one schedule item, with its start parsed into the event zone.
type Entry struct {
	Title    string
	Stage    string
	StartsAt time.Time
}

// Service answers the static side of the assistant: menu text, event facts
// and the schedule listing. Everything here is key-value lookup and
// formatting over config data.
type Service struct {
	event    config.Event
	eventLoc *time.Location
	entries  []Entry
}

// NewService parses the configured schedule against the event zone. Entry
// times in config are wall-clock event-zone times.
func NewService(event config.Event, eventLoc *time.Location) (*Service, error) {
	entries := make([]Entry, 0, len(event.Schedule))

	for _, item := range event.Schedule {
		startsAt, err := time.ParseInLocation("2006-01-02 15:04", item.StartsAt, eventLoc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse schedule entry %q: %w", item.Title, err)
		}

		entries = append(entries, Entry{
			Title:    item.Title,
			Stage:    item.Stage,
			StartsAt: startsAt,
		})
	}

	return &Service{
		event:    event,
		eventLoc: eventLoc,
		entries:  entries,
	}, nil
}

// Menu returns the assistant's capability overview.
func (s *Service) Menu() string {
	return fmt.Sprintf(`Hi! I'm the %s concierge. You can ask me to:
- "info" — venue, dates and timezone
- "schedule" — the session lineup
- "remind me <something> <when>" — set a reminder in this chat
- "list reminders" — see your pending reminders
- "cancel reminder #N" or "cancel all reminders"`, s.event.Name)
}

// Info returns the static event card.
func (s *Service) Info() string {
	return fmt.Sprintf("%s\n%s, %s\n%s – %s\nAll event times are %s.",
		s.event.Name,
		s.event.Venue,
		s.event.City,
		s.event.StartDate,
		s.event.EndDate,
		s.eventLoc.String(),
	)
}

// Schedule renders the session lineup, each entry in the requested zone
// alongside the event zone. Passing the event zone itself collapses the
// rendering to a single time.
func (s *Service) Schedule(loc *time.Location) string {
	if len(s.entries) == 0 {
		return "The schedule has not been published yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s schedule:\n", s.event.Name)

	for _, e := range s.entries {
		local := e.StartsAt.In(loc).Format(scheduleTimeFormat)
		eventTime := e.StartsAt.In(s.eventLoc).Format(scheduleTimeFormat)

		if loc == s.eventLoc || local == eventTime {
			fmt.Fprintf(&b, "• %s — %s (%s)\n", local, e.Title, e.Stage)
			continue
		}

		fmt.Fprintf(&b, "• %s (%s event time) — %s (%s)\n", local, eventTime, e.Title, e.Stage)
	}

	return strings.TrimRight(b.String(), "\n")
}
