package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// Gateway talks to an OpenAI-compatible completion endpoint. It implements
// contract.CompletionGateway and also provides the embedding call the
// retriever needs.
type Gateway struct {
	client      *openaisdk.Client
	model       string
	embedModel  string
	temperature float64
	maxTokens   int64
}

var _ contractx.CompletionGateway = (*Gateway)(nil)

func NewGateway(cfg Config) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if trimmed := strings.TrimRight(cfg.BaseURL, "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openaisdk.NewClient(opts...)
	return &Gateway{
		client:      &client,
		model:       strings.TrimSpace(cfg.Model),
		embedModel:  strings.TrimSpace(cfg.EmbeddingModel),
		temperature: float64(cfg.Temperature),
		maxTokens:   int64(cfg.MaxCompletionToken),
	}, nil
}

func (g *Gateway) Complete(ctx context.Context, system, user string) (string, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(g.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(system),
			openaisdk.UserMessage(user),
		},
		Temperature: openaisdk.Float(g.temperature),
	}
	if g.maxTokens > 0 {
		params.MaxTokens = openaisdk.Int(g.maxTokens)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", contractx.ErrModelInvoke)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *Gateway) CompleteStructured(ctx context.Context, system, user string, out any) error {
	raw, err := g.Complete(ctx, system, user)
	if err != nil {
		return err
	}
	return ParseJSON(raw, out)
}

func (g *Gateway) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.client.Embeddings.New(ctx, openaisdk.EmbeddingNewParams{
		Model: openaisdk.EmbeddingModel(g.embedModel),
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: embedding returned no data", contractx.ErrModelInvoke)
	}

	raw := resp.Data[0].Embedding
	vec := make([]float32, len(raw))
	for i, v := range raw {
		vec[i] = float32(v)
	}
	return vec, nil
}

// ParseJSON decodes a model completion as JSON. Models wrap JSON in markdown
// fences or surround it with prose; both are tolerated.
func ParseJSON(raw string, out any) error {
	payload := extractJSON(raw)
	if payload == "" {
		return fmt.Errorf("%w: no JSON in completion", contractx.ErrSchemaViolation)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("%w: %v", contractx.ErrSchemaViolation, err)
	}
	return nil
}

func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return ""
	}
	return s[start : end+1]
}
