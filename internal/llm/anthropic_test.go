package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// messageFixture builds an SDK message the way the API would return it
func messageFixture(t *testing.T, raw string) *anthropic.Message {
	t.Helper()

	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	return &msg
}

func newTestAnthropicService(t *testing.T) *AnthropicService {
	t.Helper()

	svc, err := NewAnthropicService(ProviderConfig{
		Provider: ProviderAnthropic,
		APIKey:   "sk-ant-test",
	}, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestNewAnthropicService_RequiresKey(t *testing.T) {
	_, err := NewAnthropicService(ProviderConfig{Provider: ProviderAnthropic}, zap.NewNop())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ProviderAnthropic, authErr.Provider)
}

func TestAnthropicService_ParseResume(t *testing.T) {
	svc := newTestAnthropicService(t)

	var gotParams anthropic.MessageNewParams
	svc.send = func(_ context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
		gotParams = params
		return messageFixture(t, `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-7-sonnet-latest",
			"content": [{"type": "text", "text": "{\"personalDetails\": {\"name\": \"Jane Doe\"}}"}],
			"stop_reason": "end_turn"
		}`), nil
	}

	parsed, err := svc.ParseResume(context.Background(), sampleResumeText)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", parsed.PersonalDetails.Name)

	assert.Equal(t, anthropic.Model("claude-3-7-sonnet-latest"), gotParams.Model)
	assert.EqualValues(t, anthropicMaxTokens, gotParams.MaxTokens)
	require.Len(t, gotParams.System, 1)
	assert.NotEmpty(t, gotParams.System[0].Text)
	require.Len(t, gotParams.Messages, 1)
	assert.Equal(t, anthropic.MessageParamRoleUser, gotParams.Messages[0].Role)
}

func TestAnthropicService_NoTextContent(t *testing.T) {
	svc := newTestAnthropicService(t)
	svc.send = func(_ context.Context, _ anthropic.MessageNewParams) (*anthropic.Message, error) {
		return messageFixture(t, `{"id": "msg_02", "type": "message", "role": "assistant", "content": []}`), nil
	}

	_, err := svc.AnalyzeResume(context.Background(), sampleParsedResume)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Message, "no text content")
}

func TestAnthropicService_SendError(t *testing.T) {
	svc := newTestAnthropicService(t)
	svc.send = func(_ context.Context, _ anthropic.MessageNewParams) (*anthropic.Message, error) {
		return nil, errors.New("connection reset")
	}

	_, err := svc.AnalyzeJobMatch(context.Background(), sampleParsedResume, "any job")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, ProviderAnthropic, transport.Provider)
}
