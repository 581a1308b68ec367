package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/edumentor/edumentor/agent/contract"
	nodex "github.com/edumentor/edumentor/agent/nodes"
	promptx "github.com/edumentor/edumentor/agent/prompt"
)

const defaultTopK = 5

type Config struct {
	TopK int
}

// Assistant answers study questions by routing each one through
// intent analysis, optional document retrieval or tool execution,
// response synthesis and citation formatting.
type Assistant struct {
	store     contractx.MemoryStore
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
	tools     nodex.ToolCatalog
	prompts   promptx.PromptSet

	topK int
	next transitionFunc
}

func New(
	store contractx.MemoryStore,
	llm contractx.CompletionGateway,
	retriever contractx.Retriever,
	tools nodex.ToolCatalog,
	cfg Config,
) (*Assistant, error) {
	if llm == nil {
		return nil, errors.New("completion gateway is required")
	}
	if retriever == nil {
		return nil, errors.New("retriever is required")
	}
	if tools == nil {
		return nil, errors.New("tool catalog is required")
	}
	if store == nil {
		store = noopMemoryStore{}
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	return &Assistant{
		store:     store,
		llm:       llm,
		retriever: retriever,
		tools:     tools,
		prompts:   promptx.LoadPromptSet(),
		topK:      topK,
		next:      nextNode,
	}, nil
}

// Tools exposes the catalog backing this assistant.
func (a *Assistant) Tools() nodex.ToolCatalog {
	return a.tools
}

// Answer runs one question through the workflow. It never returns an
// error: every failure mode is folded into the result's response and
// metadata.
func (a *Assistant) Answer(ctx context.Context, sessionID, question string) contractx.AnswerResult {
	if strings.TrimSpace(question) == "" {
		return contractx.AnswerResult{
			Response:    "Vui lòng cung cấp câu hỏi hợp lệ.",
			Sources:     []contractx.SourceRecord{},
			ToolOutputs: map[string]string{},
			Metadata:    contractx.AnswerMetadata{Error: "invalid_input"},
		}
	}

	history, err := a.store.Load(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to load conversation history")
		history = ""
	}

	st := &nodex.AssistantState{
		Question:    question,
		ChatHistory: history,
	}

	if err := a.runWorkflow(ctx, sessionID, st); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("workflow failed")
		return contractx.AnswerResult{
			Response:    "Lỗi hệ thống: " + err.Error(),
			Sources:     []contractx.SourceRecord{},
			ToolOutputs: map[string]string{},
			Metadata:    contractx.AnswerMetadata{Error: "workflow_error"},
		}
	}

	response := st.Response
	if response == "" {
		response = "Lỗi không xác định"
	}
	sources := st.Sources
	if sources == nil {
		sources = []contractx.SourceRecord{}
	}
	outputs := st.ToolOutputs
	if outputs == nil {
		outputs = map[string]string{}
	}

	return contractx.AnswerResult{
		Response:    response,
		Sources:     sources,
		ToolOutputs: outputs,
		Metadata: contractx.AnswerMetadata{
			RouteDecision: st.RouteDecision,
			SelectedTool:  st.SelectedTool,
		},
	}
}

type noopMemoryStore struct{}

func (noopMemoryStore) Load(context.Context, string) (string, error) { return "", nil }

func (noopMemoryStore) Append(context.Context, string, string, string) error { return nil }
