package assistant

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	aiclient "github.com/aletbay/summit-concierge/internal/openai"
)

//go:generate mockgen -source=assistant.go -destination=../mocks/assistant/mock.go -package=mocks

type reminderService interface {
	SetReminder(ctx context.Context, strategy retry.Strategy, inboxID, conversationID, text, timezone string) (string, error)
	FetchAllPendingReminders(ctx context.Context, strategy retry.Strategy, inboxID, timezone string) (string, error)
	CancelPendingReminder(ctx context.Context, reminderID int64) (string, error)
	CancelAllReminders(ctx context.Context, inboxID string) (string, error)
}

type infoService interface {
	Menu() string
	Info() string
	Schedule(loc *time.Location) string
}

type classifier interface {
	ClassifyIntent(ctx context.Context, content string) (aiclient.Intent, error)
}

// Assistant turns free-form conversation text into structured reminder and
// event-info calls. Cheap keyword matching runs first; the language model is
// only consulted when keywords resolve nothing, and an unreachable model
// degrades to the menu instead of an error.
type Assistant struct {
	reminders reminderService
	info      infoService
	ai        classifier
	eventLoc  *time.Location
}

func New(reminders reminderService, info infoService, ai classifier, eventLoc *time.Location) *Assistant {
	return &Assistant{
		reminders: reminders,
		info:      info,
		ai:        ai,
		eventLoc:  eventLoc,
	}
}

var cancelNumberRegex = regexp.MustCompile(`(?i)cancel(?:\s+reminder)?\s*#\s*(\d+)`)

// Handle routes one inbound message and returns the reply text.
func (a *Assistant) Handle(ctx context.Context, strategy retry.Strategy, inboxID, conversationID, text, timezone string) (string, error) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if id, ok := extractCancelNumber(trimmed); ok {
		return a.reminders.CancelPendingReminder(ctx, id)
	}

	switch {
	case isCancelAllRequest(lower):
		return a.reminders.CancelAllReminders(ctx, inboxID)
	case isListRequest(lower):
		return a.reminders.FetchAllPendingReminders(ctx, strategy, inboxID, timezone)
	case strings.Contains(lower, "remind"):
		return a.reminders.SetReminder(ctx, strategy, inboxID, conversationID, stripReminderPrefix(trimmed), timezone)
	case isScheduleRequest(lower):
		return a.info.Schedule(a.userLocation(timezone)), nil
	case isInfoRequest(lower):
		return a.info.Info(), nil
	case isMenuRequest(lower):
		return a.info.Menu(), nil
	}

	return a.classifyAndRoute(ctx, strategy, inboxID, conversationID, trimmed, timezone)
}

// classifyAndRoute is the model-backed fallback for messages no keyword
// matched.
func (a *Assistant) classifyAndRoute(ctx context.Context, strategy retry.Strategy, inboxID, conversationID, text, timezone string) (string, error) {
	intent, err := a.ai.ClassifyIntent(ctx, text)
	if err != nil {
		if !errors.Is(err, aiclient.ErrClientNotInitialised) {
			zlog.Logger.Warn().Err(err).Msg("intent classification failed")
		}

		return a.info.Menu(), nil
	}

	switch intent {
	case aiclient.IntentEventInfo:
		return a.info.Info(), nil
	case aiclient.IntentSchedule:
		return a.info.Schedule(a.userLocation(timezone)), nil
	case aiclient.IntentSetReminder:
		return a.reminders.SetReminder(ctx, strategy, inboxID, conversationID, text, timezone)
	case aiclient.IntentListReminders:
		return a.reminders.FetchAllPendingReminders(ctx, strategy, inboxID, timezone)
	case aiclient.IntentCancelReminder:
		return `Which one? Say "cancel reminder #N" — "list reminders" shows the numbers.`, nil
	case aiclient.IntentCancelAll:
		return a.reminders.CancelAllReminders(ctx, inboxID)
	default:
		return a.info.Menu(), nil
	}
}

func (a *Assistant) userLocation(timezone string) *time.Location {
	if timezone == "" {
		return a.eventLoc
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return a.eventLoc
	}

	return loc
}

func extractCancelNumber(text string) (int64, bool) {
	matches := cancelNumberRegex.FindStringSubmatch(text)
	if len(matches) < 2 {
		return 0, false
	}

	id, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func isCancelAllRequest(lower string) bool {
	return strings.Contains(lower, "cancel all") ||
		strings.Contains(lower, "clear all reminders") ||
		lower == "clear reminders"
}

func isListRequest(lower string) bool {
	return strings.Contains(lower, "my reminders") ||
		strings.Contains(lower, "show reminders") ||
		(strings.Contains(lower, "list") && strings.Contains(lower, "reminder"))
}

func isScheduleRequest(lower string) bool {
	return strings.Contains(lower, "schedule") ||
		strings.Contains(lower, "agenda") ||
		strings.Contains(lower, "lineup")
}

func isInfoRequest(lower string) bool {
	return strings.Contains(lower, "info") ||
		strings.Contains(lower, "venue") ||
		strings.Contains(lower, "where is")
}

func isMenuRequest(lower string) bool {
	switch lower {
	case "menu", "help", "start", "hi", "hello", "hey":
		return true
	}

	return strings.Contains(lower, "what can you do")
}

// stripReminderPrefix drops the leading "remind me" phrasing so the time
// resolver sees only the payload, e.g. "remind me to stretch in 1 hour"
// becomes "to stretch in 1 hour".
func stripReminderPrefix(text string) string {
	for _, prefix := range []string{"remind me", "remind us", "reminder:", "remind"} {
		if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
			return strings.TrimSpace(text[len(prefix):])
		}
	}

	return text
}
