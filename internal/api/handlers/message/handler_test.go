package message

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/aletbay/summit-concierge/internal/api/dto"
	"github.com/aletbay/summit-concierge/internal/config"
	mocks "github.com/aletbay/summit-concierge/internal/mocks/api/handlers/message"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockconversationAssistant, *config.Config) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAssistant := mocks.NewMockconversationAssistant(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{Attempts: 1}}
	handler := NewHandler(mockAssistant, validator.New(), cfg)

	return handler, mockAssistant, cfg
}

func TestHandler_Handle_Success(t *testing.T) {
	handler, mockAssistant, cfg := setupHandler(t)

	reqBody := dto.MessageRequest{
		InboxID:        "inbox-1",
		ConversationID: "conv-1",
		Text:           "remind me in 10 minutes",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockAssistant.EXPECT().
		Handle(gomock.Any(), cfg.Retry, "inbox-1", "conv-1", "remind me in 10 minutes", "").
		Return("✅ Reminder #1 set", nil)

	handler.Handle(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "Reminder #1 set")
}

func TestHandler_Handle_MissingFields(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.MessageRequest{Text: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Handle(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Handle_AssistantError(t *testing.T) {
	handler, mockAssistant, _ := setupHandler(t)

	reqBody := dto.MessageRequest{
		InboxID:        "inbox-1",
		ConversationID: "conv-1",
		Text:           "list reminders",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockAssistant.EXPECT().
		Handle(gomock.Any(), gomock.Any(), "inbox-1", "conv-1", "list reminders", "").
		Return("", errors.New("store unreachable"))

	handler.Handle(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}
