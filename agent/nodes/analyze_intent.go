package assistantnode

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const classifyTimeout = 20 * time.Second

// ToolCatalog is the slice of the tool registry the nodes need.
type ToolCatalog interface {
	Has(name string) bool
	NeedsContext(name string) bool
	Describe() string
	Execute(ctx context.Context, name string, in contractx.ToolInput) (string, error)
}

type routerOutput struct {
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// AnalyzeIntent classifies the question into a route decision. Any
// classifier failure degrades to the RAG route rather than failing the
// workflow.
func AnalyzeIntent(
	ctx context.Context,
	in *AssistantState,
	llm contractx.CompletionGateway,
	tools ToolCatalog,
	routerPrompt string,
) (*AssistantState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil state", contractx.ErrValidation)
	}

	cctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	system := fmt.Sprintf(routerPrompt, tools.Describe())
	user := fmt.Sprintf("Lịch sử hội thoại:\n%s\n\nCâu hỏi người dùng:\n%s", in.ChatHistory, in.Question)

	var out routerOutput
	if err := llm.CompleteStructured(cctx, system, user, &out); err != nil {
		log.Warn().Err(err).Msg("intent analysis failed, defaulting to RAG")
		applyRAGFallback(in)
		return in, nil
	}

	switch {
	case out.Action == string(contractx.RouteRAG):
		applyRAGFallback(in)
	case out.Action == string(contractx.RouteDirect):
		in.RouteDecision = contractx.RouteDirect
		in.SelectedTool = ""
		in.NeedsContext = false
	case tools.Has(out.Action):
		in.RouteDecision = contractx.RouteTool
		in.SelectedTool = out.Action
		in.NeedsContext = tools.NeedsContext(out.Action)
	default:
		log.Warn().Str("action", out.Action).Msg("unknown route action, defaulting to RAG")
		applyRAGFallback(in)
	}
	return in, nil
}

func applyRAGFallback(in *AssistantState) {
	in.RouteDecision = contractx.RouteRAG
	in.SelectedTool = ""
	in.NeedsContext = false
}
