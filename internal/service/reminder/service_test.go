package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aletbay/summit-concierge/internal/mocks/service/reminder"
	"github.com/aletbay/summit-concierge/internal/model"
	"github.com/aletbay/summit-concierge/internal/timeparse"
)

var testNow = time.Date(2026, 11, 12, 9, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *mocks.MockreminderRepo, *mocks.MocktimeResolver, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repoMock := mocks.NewMockreminderRepo(ctrl)
	resolverMock := mocks.NewMocktimeResolver(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	eventLoc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	svc := NewService(repoMock, resolverMock, cacheMock, eventLoc, func() time.Time { return testNow })

	return svc, repoMock, resolverMock, cacheMock
}

func TestService_SetReminder(t *testing.T) {
	svc, repoMock, resolverMock, cacheMock := setupService(t)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	target := testNow.Add(2 * time.Hour)

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), strategy, "tz:inbox-1").
		Return("", redis.Nil)

	resolverMock.EXPECT().
		Resolve("Staking Summit in 2 hours", gomock.Any(), testNow).
		Return(target, "Staking Summit", nil)

	repoMock.EXPECT().
		Create(gomock.Any(), model.Reminder{
			InboxID:        "inbox-1",
			ConversationID: "conv-1",
			TargetTime:     target,
			Message:        "Staking Summit",
		}).
		Return(int64(3), nil)

	confirmation, err := svc.SetReminder(
		context.Background(), strategy, "inbox-1", "conv-1", "Staking Summit in 2 hours", "",
	)

	require.NoError(t, err)
	assert.Contains(t, confirmation, "#3")
	assert.Contains(t, confirmation, "event time")
}

func TestService_SetReminder_RemembersTimezone(t *testing.T) {
	svc, repoMock, resolverMock, cacheMock := setupService(t)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	target := testNow.Add(time.Hour)

	cacheMock.EXPECT().
		SetWithRetry(gomock.Any(), strategy, "tz:inbox-1", "America/New_York").
		Return(nil)

	resolverMock.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), testNow).
		DoAndReturn(func(_ string, loc *time.Location, _ time.Time) (time.Time, string, error) {
			assert.Equal(t, "America/New_York", loc.String())
			return target, "Reminder", nil
		})

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	confirmation, err := svc.SetReminder(
		context.Background(), strategy, "inbox-1", "conv-1", "in 1 hour", "America/New_York",
	)

	require.NoError(t, err)
	assert.Contains(t, confirmation, "EST")
}

func TestService_SetReminder_ParseFailure(t *testing.T) {
	svc, _, resolverMock, cacheMock := setupService(t)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), strategy, "tz:inbox-1").
		Return("", redis.Nil)

	resolverMock.EXPECT().
		Resolve("sometime", gomock.Any(), testNow).
		Return(time.Time{}, "", timeparse.ErrUnrecognizedTime)

	reply, err := svc.SetReminder(context.Background(), strategy, "inbox-1", "conv-1", "sometime", "")

	// An unparseable time is guidance for the user, not a system error.
	require.NoError(t, err)
	assert.Contains(t, reply, "couldn't understand")
}

func TestService_SetReminder_Validation(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.SetReminder(context.Background(), retry.Strategy{}, "", "conv-1", "in 1 hour", "")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_SetReminder_ValidationReportsFirstBlankField(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.SetReminder(context.Background(), retry.Strategy{}, "", "", "", "")

	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "missing required field: inbox id")
}

func TestService_SetReminder_PersistenceError(t *testing.T) {
	svc, repoMock, resolverMock, cacheMock := setupService(t)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), strategy, "tz:inbox-1").
		Return("", redis.Nil)

	resolverMock.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), testNow).
		Return(testNow.Add(time.Hour), "Reminder", nil)

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down"))

	_, err := svc.SetReminder(context.Background(), strategy, "inbox-1", "conv-1", "in 1 hour", "")

	assert.Error(t, err)
}

func TestService_FetchAllPendingReminders_Empty(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	repoMock.EXPECT().
		ListPendingForInbox(gomock.Any(), "inbox-1").
		Return(nil, nil)

	listing, err := svc.FetchAllPendingReminders(context.Background(), retry.Strategy{}, "inbox-1", "")

	require.NoError(t, err)
	assert.Equal(t, "You have no pending reminders.", listing)
}

func TestService_FetchAllPendingReminders(t *testing.T) {
	svc, repoMock, _, cacheMock := setupService(t)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	repoMock.EXPECT().
		ListPendingForInbox(gomock.Any(), "inbox-1").
		Return([]model.Reminder{
			{ID: 1, Message: "soundcheck", TargetTime: testNow.Add(time.Hour)},
			{ID: 2, Message: "closing party", TargetTime: testNow.Add(2 * time.Hour)},
		}, nil)

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), strategy, "tz:inbox-1").
		Return("", redis.Nil)

	listing, err := svc.FetchAllPendingReminders(context.Background(), strategy, "inbox-1", "")

	require.NoError(t, err)
	assert.Contains(t, listing, "#1 — soundcheck")
	assert.Contains(t, listing, "#2 — closing party")
}

func TestService_CancelPendingReminder(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	repoMock.EXPECT().Cancel(gomock.Any(), int64(5)).Return(true, nil)

	result, err := svc.CancelPendingReminder(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Reminder #5 cancelled.", result)
}

func TestService_CancelPendingReminder_NotFound(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	repoMock.EXPECT().Cancel(gomock.Any(), int64(5)).Return(false, nil)

	result, err := svc.CancelPendingReminder(context.Background(), 5)

	require.NoError(t, err)
	assert.Contains(t, result, "No pending reminder #5")
}

func TestService_CancelAllReminders(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	tests := []struct {
		count int64
		want  string
	}{
		{0, "You had no pending reminders to cancel."},
		{1, "Cancelled 1 reminder."},
		{4, "Cancelled 4 reminders."},
	}

	for _, tt := range tests {
		repoMock.EXPECT().CancelAllForInbox(gomock.Any(), "inbox-1").Return(tt.count, nil)

		result, err := svc.CancelAllReminders(context.Background(), "inbox-1")

		require.NoError(t, err)
		assert.Equal(t, tt.want, result)
	}
}
