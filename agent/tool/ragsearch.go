package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// RAGSearch surfaces raw document passages for a query. When the
// orchestrator already retrieved context it is returned as-is.
type RAGSearch struct {
	retriever contractx.Retriever
}

var _ contractx.Tool = (*RAGSearch)(nil)

func NewRAGSearch(retriever contractx.Retriever) *RAGSearch {
	return &RAGSearch{retriever: retriever}
}

func (t *RAGSearch) Name() string { return "RAG_Search" }

func (t *RAGSearch) Description() string {
	return "Tìm kiếm thông tin trong tài liệu học tập."
}

func (t *RAGSearch) NeedsContext() bool { return true }

func (t *RAGSearch) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	query := strings.TrimSpace(in.Question)
	if query == "" {
		return "Vui lòng cung cấp câu hỏi để tìm kiếm.", nil
	}

	if in.Context != "" {
		return in.Context, nil
	}
	if t.retriever == nil {
		return "Không tìm thấy thông tin liên quan.", nil
	}

	records, err := t.retriever.Search(ctx, query, 0)
	if err != nil {
		return "", fmt.Errorf("search documents: %w", err)
	}
	if len(records) == 0 {
		return "Không tìm thấy thông tin liên quan.", nil
	}

	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, rec.Text)
	}
	return strings.Join(parts, "\n\n"), nil
}
