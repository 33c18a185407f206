package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aletbay/summit-concierge/internal/model"
)

// Repository provides methods to interact with the reminders table. The
// table is the single arbiter of reminder state: conflicting writes
// (cancel vs mark-sent) race through it atomically, and whichever lands
// second becomes a harmless no-op.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pending reminder and returns its ID. IDs are
// assigned by the database sequence, so their order follows creation order.
func (r *Repository) Create(ctx context.Context, rem model.Reminder) (int64, error) {
	query := `
		INSERT INTO reminders (
		    inbox_id, conversation_id, target_time, message
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	var id int64
	err := r.db.Master.QueryRowContext(
		ctx, query, rem.InboxID, rem.ConversationID, rem.TargetTime.UTC(), rem.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create reminder: %w", err)
	}

	return id, nil
}

// ListPending retrieves all undelivered reminders ordered by target time.
func (r *Repository) ListPending(ctx context.Context) ([]model.Reminder, error) {
	query := `
		SELECT id, inbox_id, conversation_id, target_time, message, sent, created_at
		FROM reminders
		WHERE NOT sent
		ORDER BY target_time ASC, id ASC;
    `

	return r.queryReminders(ctx, query)
}

// ListPendingForInbox retrieves one inbox's undelivered reminders ordered
// by target time.
func (r *Repository) ListPendingForInbox(ctx context.Context, inboxID string) ([]model.Reminder, error) {
	query := `
		SELECT id, inbox_id, conversation_id, target_time, message, sent, created_at
		FROM reminders
		WHERE NOT sent AND inbox_id = $1
		ORDER BY target_time ASC, id ASC;
    `

	return r.queryReminders(ctx, query, inboxID)
}

// DueAsOf retrieves pending reminders whose target time has passed,
// ordered by target time. This is the dispatcher's primary read.
func (r *Repository) DueAsOf(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	query := `
		SELECT id, inbox_id, conversation_id, target_time, message, sent, created_at
		FROM reminders
		WHERE NOT sent AND target_time <= $1
		ORDER BY target_time ASC, id ASC;
    `

	return r.queryReminders(ctx, query, now.UTC())
}

// MarkSent flips a reminder to sent. Marking an already-sent or unknown id
// is a no-op, never an error, so the dispatcher tolerates races with cancel.
func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	query := `
		UPDATE reminders
		SET sent = TRUE
		WHERE id = $1 AND NOT sent;
    `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

// Cancel deletes a pending reminder and reports whether a row was removed.
// Sent reminders are inert history and cannot be cancelled.
func (r *Repository) Cancel(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM reminders
		WHERE id = $1 AND NOT sent;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel reminder: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}

// CancelAllForInbox deletes all of an inbox's pending reminders and returns
// how many were removed.
func (r *Repository) CancelAllForInbox(ctx context.Context, inboxID string) (int64, error) {
	query := `
		DELETE FROM reminders
		WHERE inbox_id = $1 AND NOT sent;
    `

	res, err := r.db.ExecContext(ctx, query, inboxID)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel reminders: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}

func (r *Repository) queryReminders(ctx context.Context, query string, args ...interface{}) ([]model.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.InboxID, &rem.ConversationID, &rem.TargetTime, &rem.Message, &rem.Sent, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}

		// Instants are compared and rendered in UTC no matter what
		// offset the driver hands back.
		rem.TargetTime = rem.TargetTime.UTC()
		rem.CreatedAt = rem.CreatedAt.UTC()

		reminders = append(reminders, rem)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}
