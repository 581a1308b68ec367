package assistant

import (
	"context"
	"fmt"

	contractx "github.com/edumentor/edumentor/agent/contract"
	nodex "github.com/edumentor/edumentor/agent/nodes"
)

type graphNode int

const (
	nodeAnalyzeIntent graphNode = iota
	nodeRetrieveContext
	nodeExecuteTool
	nodeGenerateResponse
	nodeFormatSources
	nodeEnd
)

const maxGraphSteps = 15

// transitionFunc maps the finished node and the state it produced to the
// next node to run.
type transitionFunc func(graphNode, *nodex.AssistantState) graphNode

// runWorkflow drives the state machine from intent analysis to the
// formatted response. The step cap guards against a broken transition
// table looping forever.
func (a *Assistant) runWorkflow(ctx context.Context, sessionID string, st *nodex.AssistantState) error {
	node := nodeAnalyzeIntent
	for steps := 0; node != nodeEnd; steps++ {
		if steps >= maxGraphSteps {
			return fmt.Errorf("%w: exceeded %d steps", contractx.ErrStepLimit, maxGraphSteps)
		}

		var err error
		switch node {
		case nodeAnalyzeIntent:
			st, err = nodex.AnalyzeIntent(ctx, st, a.llm, a.tools, a.prompts.Router)
		case nodeRetrieveContext:
			st, err = nodex.RetrieveContext(ctx, st, a.retriever, a.topK)
		case nodeExecuteTool:
			st, err = nodex.ExecuteTool(ctx, st, a.tools)
		case nodeGenerateResponse:
			st, err = nodex.GenerateResponse(ctx, st, a.llm, a.store, sessionID, a.prompts.Synthesizer)
		case nodeFormatSources:
			st, err = nodex.FormatSources(st)
		default:
			return fmt.Errorf("%w: unknown graph node %d", contractx.ErrValidation, node)
		}
		if err != nil {
			return err
		}
		node = a.next(node, st)
	}
	return nil
}

func nextNode(current graphNode, st *nodex.AssistantState) graphNode {
	switch current {
	case nodeAnalyzeIntent:
		switch st.RouteDecision {
		case contractx.RouteRAG:
			return nodeRetrieveContext
		case contractx.RouteTool:
			if st.NeedsContext {
				return nodeRetrieveContext
			}
			return nodeExecuteTool
		default:
			return nodeGenerateResponse
		}
	case nodeRetrieveContext:
		if st.RouteDecision == contractx.RouteTool {
			return nodeExecuteTool
		}
		return nodeGenerateResponse
	case nodeExecuteTool:
		return nodeGenerateResponse
	case nodeGenerateResponse:
		return nodeFormatSources
	default:
		return nodeEnd
	}
}
