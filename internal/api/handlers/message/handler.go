package message

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletbay/summit-concierge/internal/api/dto"
	"github.com/aletbay/summit-concierge/internal/api/respond"
	"github.com/aletbay/summit-concierge/internal/config"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/message/mock.go -package=mocks

type conversationAssistant interface {
	Handle(ctx context.Context, strategy retry.Strategy, inboxID, conversationID, text, timezone string) (string, error)
}

type Handler struct {
	assistant conversationAssistant
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	a conversationAssistant,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{assistant: a, validator: v, cfg: cfg}
}

// Handle routes one inbound conversation message through the assistant and
// returns the reply text.
func (h *Handler) Handle(c *ginext.Context) {
	var req dto.MessageRequest

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

	reply, err := h.assistant.Handle(
		c.Request.Context(), h.cfg.Retry, req.InboxID, req.ConversationID, req.Text, req.Timezone,
	)
	if err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("inbox_id", req.InboxID).
			Str("conversation_id", req.ConversationID).
			Msg("failed to handle message")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, reply)
}
