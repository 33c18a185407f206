package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletbay/summit-concierge/internal/model"
	"github.com/aletbay/summit-concierge/internal/sink"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

// DeliveryPrefix is prepended to the stored message on delivery. The instant
// has already passed by then, so no time is rendered into the text.
const DeliveryPrefix = "⏰ "

type reminderStore interface {
	DueAsOf(ctx context.Context, now time.Time) ([]model.Reminder, error)
	MarkSent(ctx context.Context, id int64) error
}

// Dispatcher polls the store on a fixed period and pushes due reminders
// through a MessageSink. Delivery is at-least-once: a reminder is marked
// sent only after the sink accepts it, so a crash or a failed mark between
// the two can replay it on the next cycle.
type Dispatcher struct {
	store  reminderStore
	period time.Duration
	now    func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
	sink sink.MessageSink
}

// NewDispatcher creates a stopped dispatcher. The clock is injectable so
// tests can pin "now" without real timers.
func NewDispatcher(store reminderStore, period time.Duration, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}

	return &Dispatcher{
		store:  store,
		period: period,
		now:    now,
	}
}

// Start begins the recurring dispatch cycle, delivering through s. Calling
// Start while already running is a no-op. Overlapping ticks are skipped
// rather than stacked, and a panicking cycle does not kill the schedule.
func (d *Dispatcher) Start(s sink.MessageSink) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cron != nil {
		return
	}

	d.sink = s

	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{}),
		cron.SkipIfStillRunning(cronLogger{}),
	))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", d.period), func() {
		d.RunCycle(context.Background())
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to schedule dispatch cycle")
		return
	}

	c.Start()
	d.cron = c

	zlog.Logger.Info().Dur("period", d.period).Msg("reminder dispatcher started")
}

// Stop suspends the recurring cycle. It is cooperative: no new cycles begin,
// but an in-flight cycle is left to finish. Calling Stop while already
// stopped is a no-op.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cron == nil {
		return
	}

	d.cron.Stop()
	d.cron = nil

	zlog.Logger.Info().Msg("reminder dispatcher stopped")
}

// RunCycle fetches every due reminder and processes them in ascending
// target-time order. A failed delivery is logged and skipped so it cannot
// block the remaining due reminders; the reminder stays pending and is
// retried next cycle.
func (d *Dispatcher) RunCycle(ctx context.Context) {
	now := d.now()

	due, err := d.store.DueAsOf(ctx, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to fetch due reminders")
		return
	}

	for _, rem := range due {
		text := DeliveryPrefix + rem.Message

		if err := d.sink.Deliver(ctx, rem.ConversationID, text); err != nil {
			zlog.Logger.Warn().
				Err(err).
				Int64("reminder_id", rem.ID).
				Str("conversation_id", rem.ConversationID).
				Msg("failed to deliver reminder, will retry next cycle")
			continue
		}

		if err := d.store.MarkSent(ctx, rem.ID); err != nil {
			// Delivery succeeded but the flag write did not; the
			// reminder may be delivered again next cycle.
			zlog.Logger.Error().
				Err(err).
				Int64("reminder_id", rem.ID).
				Msg("failed to mark reminder sent")
			continue
		}

		zlog.Logger.Info().
			Int64("reminder_id", rem.ID).
			Str("conversation_id", rem.ConversationID).
			Msg("reminder delivered")
	}
}

// cronLogger adapts zlog to the cron.Logger interface.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zlog.Logger.Debug().Interface("details", keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zlog.Logger.Error().Err(err).Interface("details", keysAndValues).Msg(msg)
}
