package assistantnode

import (
	contractx "github.com/edumentor/edumentor/agent/contract"
)

// AssistantState is the mutable workflow state threaded through every
// node of one Answer call.
type AssistantState struct {
	Question    string
	ChatHistory string

	// Populated by AnalyzeIntent.
	RouteDecision contractx.RouteDecision
	SelectedTool  string
	NeedsContext  bool

	// Populated by RetrieveContext. ContextOK distinguishes usable
	// context from a degraded placeholder message.
	Context   string
	ContextOK bool
	Sources   []contractx.SourceRecord

	// Populated by ExecuteTool.
	ToolOutputs map[string]string

	// Populated by GenerateResponse and FormatSources.
	Response string
}
