package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.MessageGenerator = (*Generator)(nil)

// Options configures the chat completion call
type Options struct {
	APIKey      string
	BaseURL     string // Empty selects the public API
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// Generator rewrites messages with a chat completion model
type Generator struct {
	client *goopenai.Client
	opts   Options
}

// NewGenerator creates a chat completion backed generator
func NewGenerator(opts Options) (*Generator, error) {
	if opts.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if opts.Model == "" {
		opts.Model = goopenai.GPT4oMini
	}

	cfg := goopenai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &Generator{client: goopenai.NewClientWithConfig(cfg), opts: opts}, nil
}

type completion struct {
	Message     string `json:"message"`
	Explanation string `json:"explanation"`
}

// Generate asks the model for a JSON object with the rewrite and a short explanation
func (g *Generator) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GeneratedMessage, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       g.opts.Model,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt(req)},
			{Role: goopenai.ChatMessageRoleUser, Content: req.MessageDescription},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	var out completion
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("decoding completion: %w", err)
	}
	if strings.TrimSpace(out.Message) == "" {
		return nil, errors.New("completion has no message")
	}
	return &entity.GeneratedMessage{Message: out.Message, Explanation: out.Explanation}, nil
}

func systemPrompt(req *entity.GenerationRequest) string {
	var sb strings.Builder
	sb.WriteString("You rewrite workplace messages so they land well with the recipient.\n")
	fmt.Fprintf(&sb, "Scenario: %s.\n", req.MessageType)
	fmt.Fprintf(&sb, "Formality %d/100, directness %d/100, emotional sensitivity %d/100.\n",
		req.Context.Formality, req.Context.Directness, req.Context.EmotionalSensitivity)
	fmt.Fprintf(&sb, "The sender has %s power than the recipient.\n", powerPhrase(req.Context.PowerRelationship))
	if req.Context.CulturalContext != "" {
		fmt.Fprintf(&sb, "Cultural context: %s.\n", req.Context.CulturalContext)
	}
	if req.Context.Medium != "" {
		fmt.Fprintf(&sb, "Medium: %s.\n", req.Context.Medium)
	}
	fmt.Fprintf(&sb, "Write the message in %s and the explanation in %s.\n", req.TargetLanguage, req.Locale)
	sb.WriteString(`Answer with a JSON object {"message": string, "explanation": string}.`)
	return sb.String()
}

func powerPhrase(p entity.PowerRelationship) string {
	switch p {
	case entity.PowerMore:
		return "more"
	case entity.PowerLess:
		return "less"
	default:
		return "the same"
	}
}
