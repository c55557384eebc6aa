package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

func fakeAPI(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req goopenai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[0].Content, "Write the message in de")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(goopenai.ChatCompletionResponse{
			Choices: []goopenai.ChatCompletionChoice{{
				Message: goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleAssistant, Content: content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func request() *entity.GenerationRequest {
	return &entity.GenerationRequest{
		MessageType:        "Decline a meeting",
		MessageDescription: "I cannot attend on Friday",
		Context:            entity.ToneContext{Formality: 80, PowerRelationship: entity.PowerLess},
		Locale:             "en",
		TargetLanguage:     "de",
	}
}

func TestGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes the JSON completion", func(t *testing.T) {
		srv := fakeAPI(t, `{"message":"Leider kann ich nicht","explanation":"Polite decline"}`, http.StatusOK)
		gen, err := NewGenerator(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"})
		require.NoError(t, err)

		msg, err := gen.Generate(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, "Leider kann ich nicht", msg.Message)
		assert.Equal(t, "Polite decline", msg.Explanation)
	})

	t.Run("Malformed completion", func(t *testing.T) {
		srv := fakeAPI(t, "not json", http.StatusOK)
		gen, err := NewGenerator(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"})
		require.NoError(t, err)

		_, err = gen.Generate(ctx, request())
		assert.Error(t, err)
	})

	t.Run("Upstream error", func(t *testing.T) {
		srv := fakeAPI(t, "", http.StatusServiceUnavailable)
		gen, err := NewGenerator(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"})
		require.NoError(t, err)

		_, err = gen.Generate(ctx, request())
		assert.Error(t, err)
	})

	t.Run("API key is required", func(t *testing.T) {
		_, err := NewGenerator(Options{})
		assert.Error(t, err)
	})
}
