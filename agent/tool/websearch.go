package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
	"github.com/edumentor/edumentor/pkg/serper"
)

// WebSearcher is the slice of the serper client this tool needs.
type WebSearcher interface {
	Search(ctx context.Context, query string, num int) ([]serper.Result, error)
}

// WebSearch answers questions outside the document corpus through a
// web search provider.
type WebSearch struct {
	searcher WebSearcher
}

var _ contractx.Tool = (*WebSearch)(nil)

func NewWebSearch(searcher WebSearcher) *WebSearch {
	return &WebSearch{searcher: searcher}
}

func (t *WebSearch) Name() string { return "Web_Search" }

func (t *WebSearch) Description() string {
	return "Tìm kiếm thông tin trên internet."
}

func (t *WebSearch) NeedsContext() bool { return false }

func (t *WebSearch) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	query := strings.TrimSpace(in.Question)
	if query == "" {
		return "Vui lòng cung cấp từ khóa tìm kiếm.", nil
	}
	if t.searcher == nil {
		return "", fmt.Errorf("web search is not configured")
	}

	results, err := t.searcher.Search(ctx, query, 0)
	if err != nil {
		return "", fmt.Errorf("web search: %w", err)
	}
	if len(results) == 0 {
		return fmt.Sprintf("Không tìm thấy kết quả cho '%s'.", query), nil
	}

	var b strings.Builder
	b.WriteString("Kết quả tìm kiếm:\n")
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s\n   Link: %s\n   %s\n", i+1, r.Title, r.Link, r.Snippet)
	}
	return b.String(), nil
}
