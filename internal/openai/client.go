package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrClientNotInitialised is returned when attempting to call the API
// without a configured API key.
var ErrClientNotInitialised = errors.New("openai client not initialised")

// Intent represents the high-level action inferred from a user message.
type Intent string

const (
	// IntentUnknown indicates the message intent could not be resolved.
	IntentUnknown Intent = "unknown"
	// IntentMenu asks for usage guidance.
	IntentMenu Intent = "menu"
	// IntentEventInfo asks for venue, dates or other event facts.
	IntentEventInfo Intent = "event_info"
	// IntentSchedule asks for the session lineup.
	IntentSchedule Intent = "schedule"
	// IntentSetReminder instructs the assistant to capture a new reminder.
	IntentSetReminder Intent = "set_reminder"
	// IntentListReminders asks for the user's pending reminders.
	IntentListReminders Intent = "list_reminders"
	// IntentCancelReminder requests cancellation of one reminder.
	IntentCancelReminder Intent = "cancel_reminder"
	// IntentCancelAll requests that all pending reminders be cancelled.
	IntentCancelAll Intent = "cancel_all"
)

const classifyPrompt = "Classify the user's request to an event concierge bot. " +
	"Reply with exactly one label: menu, event_info, schedule, set_reminder, " +
	"list_reminders, cancel_reminder, cancel_all, or unknown."

// Client wraps the OpenAI SDK for intent classification. It is the fallback
// behind keyword routing, so a nil underlying client is a valid state.
type Client struct {
	client *openai.Client
	model  openai.ChatModel
}

// New returns an OpenAI client when apiKey is provided, otherwise the
// returned client reports ErrClientNotInitialised on use.
func New(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// ClassifyIntent uses the language model to infer the user's intent.
func (c *Client) ClassifyIntent(ctx context.Context, content string) (Intent, error) {
	if strings.TrimSpace(content) == "" {
		return IntentUnknown, fmt.Errorf("content cannot be empty")
	}
	if c.client == nil {
		return IntentUnknown, ErrClientNotInitialised
	}

	req := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(classifyPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(content),
					},
				},
			},
		},
		Temperature:         openai.Float(0.0),
		MaxCompletionTokens: openai.Int(8),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return IntentUnknown, err
	}
	if len(resp.Choices) == 0 {
		return IntentUnknown, fmt.Errorf("no completion received")
	}

	label := Intent(strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content)))
	switch label {
	case IntentMenu, IntentEventInfo, IntentSchedule, IntentSetReminder,
		IntentListReminders, IntentCancelReminder, IntentCancelAll:
		return label, nil
	default:
		return IntentUnknown, nil
	}
}
