package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletbay/summit-concierge/internal/api/dto"
	"github.com/aletbay/summit-concierge/internal/api/respond"
	"github.com/aletbay/summit-concierge/internal/config"
	remindersvc "github.com/aletbay/summit-concierge/internal/service/reminder"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks

type reminderService interface {
	SetReminder(ctx context.Context, strategy retry.Strategy, inboxID, conversationID, text, timezone string) (string, error)
	FetchAllPendingReminders(ctx context.Context, strategy retry.Strategy, inboxID, timezone string) (string, error)
	CancelPendingReminder(ctx context.Context, reminderID int64) (string, error)
	CancelAllReminders(ctx context.Context, inboxID string) (string, error)
}

type Handler struct {
	service   reminderService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s reminderService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create sets a reminder from structured tool arguments. A time the
// resolver could not understand still returns 200: the body carries
// guidance text for the user, not a system error.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.SetReminderRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	confirmation, err := h.service.SetReminder(
		c.Request.Context(), h.cfg.Retry, req.InboxID, req.ConversationID, req.Text, req.Timezone,
	)
	if err != nil {
		if errors.Is(err, remindersvc.ErrValidation) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("inbox_id", req.InboxID).Msg("failed to set reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, confirmation)
}

// List renders one inbox's pending reminders.
func (h *Handler) List(c *ginext.Context) {
	inboxID := c.Param("inbox_id")
	if inboxID == "" {
		zlog.Logger.Warn().Msg("missing inbox id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing inbox id"))
		return
	}

	listing, err := h.service.FetchAllPendingReminders(
		c.Request.Context(), h.cfg.Retry, inboxID, c.Query("timezone"),
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("inbox_id", inboxID).Msg("failed to list reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, listing)
}

// Cancel removes one pending reminder by id.
func (h *Handler) Cancel(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	result, err := h.service.CancelPendingReminder(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to cancel reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}

// CancelAll removes every pending reminder for one inbox.
func (h *Handler) CancelAll(c *ginext.Context) {
	var req dto.CancelAllRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.service.CancelAllReminders(c.Request.Context(), req.InboxID)
	if err != nil {
		if errors.Is(err, remindersvc.ErrValidation) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("inbox_id", req.InboxID).Msg("failed to cancel reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}
