package reminder

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aletbay/summit-concierge/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	rem := model.Reminder{
		InboxID:        "inbox-1",
		ConversationID: "conv-1",
		TargetTime:     time.Date(2026, 11, 12, 10, 0, 0, 0, time.UTC),
		Message:        "Opening keynote",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO reminders (
		    inbox_id, conversation_id, target_time, message
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `)).
		WithArgs(rem.InboxID, rem.ConversationID, rem.TargetTime, rem.Message).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), rem)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDueAsOf(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Date(2026, 11, 12, 10, 0, 0, 0, time.UTC)
	early := now.Add(-2 * time.Minute)
	late := now.Add(-1 * time.Minute)

	rows := sqlmock.NewRows([]string{
		"id", "inbox_id", "conversation_id", "target_time", "message", "sent", "created_at",
	}).
		AddRow(int64(1), "inbox-1", "conv-1", early, "first", false, now.Add(-time.Hour)).
		AddRow(int64(2), "inbox-2", "conv-2", late, "second", false, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, inbox_id, conversation_id, target_time, message, sent, created_at
		FROM reminders
		WHERE NOT sent AND target_time <= $1
		ORDER BY target_time ASC, id ASC;
    `)).
		WithArgs(now).
		WillReturnRows(rows)

	due, err := repo.DueAsOf(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, due, 2)

	assert.Equal(t, int64(1), due[0].ID)
	assert.Equal(t, "first", due[0].Message)
	assert.Equal(t, early, due[0].TargetTime)
	assert.Equal(t, time.UTC, due[0].TargetTime.Location())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingForInbox_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, inbox_id, conversation_id, target_time, message, sent, created_at
		FROM reminders
		WHERE NOT sent AND inbox_id = $1
		ORDER BY target_time ASC, id ASC;
    `)).
		WithArgs("inbox-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "inbox_id", "conversation_id", "target_time", "message", "sent", "created_at",
		}))

	reminders, err := repo.ListPendingForInbox(context.Background(), "inbox-1")
	assert.NoError(t, err)
	assert.Empty(t, reminders)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent_Idempotent(t *testing.T) {
	repo, mock := setupMockDB(t)

	// No rows touched (already sent or cancelled) must still be a no-op,
	// not an error.
	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE reminders
		SET sent = TRUE
		WHERE id = $1 AND NOT sent;
    `)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), 42)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM reminders
		WHERE id = $1 AND NOT sent;
    `)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Cancel(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_MissingOrSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM reminders
		WHERE id = $1 AND NOT sent;
    `)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Cancel(context.Background(), 5)
	assert.NoError(t, err)
	assert.False(t, removed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelAllForInbox(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM reminders
		WHERE inbox_id = $1 AND NOT sent;
    `)).
		WithArgs("inbox-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.CancelAllForInbox(context.Background(), "inbox-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
