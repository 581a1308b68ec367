package contract

// RouteDecision is the strategy selected for a question.
type RouteDecision string

const (
	RouteRAG    RouteDecision = "RAG"
	RouteDirect RouteDecision = "DIRECT"
	RouteTool   RouteDecision = "TOOL"
)

// SourceRecord is a scored document excerpt with provenance. Immutable once
// produced by the retriever. A zero PageNumber/SlideNumber means the field
// was absent from the document metadata.
type SourceRecord struct {
	Text        string  `json:"text"`
	SourceFile  string  `json:"source_file"`
	PageNumber  int     `json:"page_number,omitempty"`
	SlideNumber int     `json:"slide_number,omitempty"`
	Score       float64 `json:"score"`
}

// ToolInput is the snapshot of request state handed to a tool. Tools never
// see or mutate the pipeline state itself.
type ToolInput struct {
	Question    string
	Context     string
	ChatHistory string
	Sources     []SourceRecord
	Args        map[string]any
}

type AnswerMetadata struct {
	RouteDecision RouteDecision `json:"route_decision,omitempty"`
	SelectedTool  string        `json:"selected_tool,omitempty"`
	Error         string        `json:"error,omitempty"`
}

// AnswerResult is constructed fresh per call to Answer, never cached.
type AnswerResult struct {
	Response    string            `json:"response"`
	Sources     []SourceRecord    `json:"sources"`
	ToolOutputs map[string]string `json:"tool_outputs"`
	Metadata    AnswerMetadata    `json:"metadata"`
}
