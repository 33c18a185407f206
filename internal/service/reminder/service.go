package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletbay/summit-concierge/internal/model"
	"github.com/aletbay/summit-concierge/internal/timeparse"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

// ErrValidation marks a missing or empty required argument, rejected before
// the store is touched.
var ErrValidation = errors.New("missing required field")

const (
	confirmTimeFormat = "Mon, Jan 2 at 3:04 PM MST"
	listTimeFormat    = "Mon, Jan 2 15:04 MST"

	parseFailureText = `Sorry, I couldn't understand that time. Try something like "in 10 minutes" or "tomorrow at 3pm".`

	tzPrefKeyPrefix = "tz:"
)

type reminderRepo interface {
	Create(ctx context.Context, rem model.Reminder) (int64, error)
	ListPendingForInbox(ctx context.Context, inboxID string) ([]model.Reminder, error)
	Cancel(ctx context.Context, id int64) (bool, error)
	CancelAllForInbox(ctx context.Context, inboxID string) (int64, error)
}

type timeResolver interface {
	Resolve(text string, loc *time.Location, ref time.Time) (time.Time, string, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service validates reminder requests, resolves their times and renders
// the human-readable confirmations and listings. Listing and cancellation
// are scoped by inbox id, never by conversation id alone, so one
// conversation cannot enumerate another user's reminders; delivery is the
// single intentional exception and is scoped by conversation.
type Service struct {
	repo     reminderRepo
	resolver timeResolver
	cache    cache

	eventLoc *time.Location
	now      func() time.Time
}

func NewService(repo reminderRepo, resolver timeResolver, cache cache, eventLoc *time.Location, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:     repo,
		resolver: resolver,
		cache:    cache,
		eventLoc: eventLoc,
		now:      now,
	}
}

// SetReminder parses text into an instant in the user's zone, stores the
// reminder for the given conversation and returns a confirmation echoing
// the time in both the user's zone and the event zone. An unparseable time
// is a normal, recoverable condition and comes back as guidance text, not
// as an error.
func (s *Service) SetReminder(ctx context.Context, strategy retry.Strategy, inboxID, conversationID, text, timezone string) (string, error) {
	if err := requireFields(
		requiredField{"inbox id", inboxID},
		requiredField{"conversation id", conversationID},
		requiredField{"text", text},
	); err != nil {
		return "", err
	}

	loc := s.userLocation(ctx, strategy, inboxID, timezone)

	target, message, err := s.resolver.Resolve(text, loc, s.now())
	if err != nil {
		if errors.Is(err, timeparse.ErrUnrecognizedTime) {
			return parseFailureText, nil
		}

		return "", fmt.Errorf("resolve time: %w", err)
	}

	id, err := s.repo.Create(ctx, model.Reminder{
		InboxID:        inboxID,
		ConversationID: conversationID,
		TargetTime:     target,
		Message:        message,
	})
	if err != nil {
		return "", fmt.Errorf("create reminder: %w", err)
	}

	confirmation := fmt.Sprintf(
		"✅ Reminder #%d set for %s — that's %s event time. I'll ping you in this chat.",
		id,
		target.In(loc).Format(confirmTimeFormat),
		target.In(s.eventLoc).Format(confirmTimeFormat),
	)

	return confirmation, nil
}

// FetchAllPendingReminders renders one inbox's pending reminders, each
// shown in the requested zone alongside the event zone.
func (s *Service) FetchAllPendingReminders(ctx context.Context, strategy retry.Strategy, inboxID, timezone string) (string, error) {
	if err := requireFields(requiredField{"inbox id", inboxID}); err != nil {
		return "", err
	}

	reminders, err := s.repo.ListPendingForInbox(ctx, inboxID)
	if err != nil {
		return "", fmt.Errorf("list reminders: %w", err)
	}

	if len(reminders) == 0 {
		return "You have no pending reminders.", nil
	}

	loc := s.userLocation(ctx, strategy, inboxID, timezone)

	var b strings.Builder
	b.WriteString("Your pending reminders:\n")
	for _, rem := range reminders {
		fmt.Fprintf(&b, "#%d — %s — %s (%s event time)\n",
			rem.ID,
			rem.Message,
			rem.TargetTime.In(loc).Format(listTimeFormat),
			rem.TargetTime.In(s.eventLoc).Format(listTimeFormat),
		)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// CancelPendingReminder cancels one reminder by id. The result text says
// whether a pending reminder was actually removed.
func (s *Service) CancelPendingReminder(ctx context.Context, reminderID int64) (string, error) {
	removed, err := s.repo.Cancel(ctx, reminderID)
	if err != nil {
		return "", fmt.Errorf("cancel reminder: %w", err)
	}

	if !removed {
		return fmt.Sprintf("No pending reminder #%d — it may have already fired or was cancelled.", reminderID), nil
	}

	return fmt.Sprintf("Reminder #%d cancelled.", reminderID), nil
}

// CancelAllReminders cancels every pending reminder for an inbox and
// reports the count, including the zero case.
func (s *Service) CancelAllReminders(ctx context.Context, inboxID string) (string, error) {
	if err := requireFields(requiredField{"inbox id", inboxID}); err != nil {
		return "", err
	}

	count, err := s.repo.CancelAllForInbox(ctx, inboxID)
	if err != nil {
		return "", fmt.Errorf("cancel all reminders: %w", err)
	}

	switch count {
	case 0:
		return "You had no pending reminders to cancel.", nil
	case 1:
		return "Cancelled 1 reminder.", nil
	default:
		return fmt.Sprintf("Cancelled %d reminders.", count), nil
	}
}

// userLocation picks the zone reminders are phrased and rendered in: the
// explicit request value first, then the inbox's remembered preference,
// then the event zone. An explicit value is remembered for next time.
func (s *Service) userLocation(ctx context.Context, strategy retry.Strategy, inboxID, timezone string) *time.Location {
	if timezone == "" {
		cached, err := s.cache.GetWithRetry(ctx, strategy, tzPrefKeyPrefix+inboxID)
		if err != nil && !errors.Is(err, redis.Nil) {
			zlog.Logger.Warn().Err(err).Str("inbox_id", inboxID).Msg("failed to read timezone preference")
		}

		timezone = cached
	} else {
		if err := s.cache.SetWithRetry(ctx, strategy, tzPrefKeyPrefix+inboxID, timezone); err != nil {
			zlog.Logger.Warn().Err(err).Str("inbox_id", inboxID).Msg("failed to cache timezone preference")
		}
	}

	if timezone == "" {
		return s.eventLoc
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("timezone", timezone).Msg("unknown timezone, falling back to event zone")
		return s.eventLoc
	}

	return loc
}

type requiredField struct {
	name  string
	value string
}

// requireFields checks fields in the order given so the reported field is
// stable when several are blank.
func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrValidation, f.name)
		}
	}

	return nil
}
