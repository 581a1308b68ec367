package contract

import "context"

// Retriever is the hybrid document-retrieval collaborator. Implementations
// must be safe for concurrent use.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]SourceRecord, error)
}

// CompletionGateway wraps the LLM collaborator.
type CompletionGateway interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteStructured(ctx context.Context, system, user string, out any) error
}

// Tool is a named capability producing a specialized artifact. Tools receive
// an immutable input snapshot and report failures as errors; the tool stage
// converts them into result strings.
type Tool interface {
	Name() string
	Description() string
	NeedsContext() bool
	Execute(ctx context.Context, in ToolInput) (string, error)
}

// MemoryStore is an append-only conversation log keyed by session id.
// Load returns the formatted history for prompt embedding. The design
// assumes at most one in-flight request per session; implementations only
// guarantee that appends from different sessions do not corrupt each other.
type MemoryStore interface {
	Load(ctx context.Context, sessionID string) (string, error)
	Append(ctx context.Context, sessionID, question, response string) error
}
