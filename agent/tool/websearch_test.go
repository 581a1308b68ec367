package tool

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/edumentor/edumentor/agent/contract"
	"github.com/edumentor/edumentor/pkg/serper"
)

type fakeSearcher struct {
	results []serper.Result
	err     error

	lastQuery string
}

func (f *fakeSearcher) Search(ctx context.Context, query string, num int) ([]serper.Result, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestWebSearchFormatsResults(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{results: []serper.Result{
		{Title: "Go slices", Link: "https://go.dev/blog/slices", Snippet: "Slices are ..."},
		{Title: "Effective Go", Link: "https://go.dev/doc/effective_go", Snippet: "Tips ..."},
	}}
	ws := NewWebSearch(searcher)

	out, err := ws.Execute(context.Background(), contractx.ToolInput{Question: "go slices"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "Kết quả tìm kiếm:") {
		t.Fatalf("unexpected prefix: %q", out)
	}
	if !strings.Contains(out, "1. Go slices\n   Link: https://go.dev/blog/slices\n   Slices are ...") {
		t.Fatalf("unexpected first entry: %q", out)
	}
	if !strings.Contains(out, "2. Effective Go") {
		t.Fatalf("unexpected second entry: %q", out)
	}
	if searcher.lastQuery != "go slices" {
		t.Fatalf("unexpected query: %q", searcher.lastQuery)
	}
}

func TestWebSearchSentinels(t *testing.T) {
	t.Parallel()

	ws := NewWebSearch(&fakeSearcher{})

	out, err := ws.Execute(context.Background(), contractx.ToolInput{Question: ""})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "Vui lòng cung cấp từ khóa tìm kiếm." {
		t.Fatalf("unexpected empty-query output: %q", out)
	}

	out, err = ws.Execute(context.Background(), contractx.ToolInput{Question: "abc"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "Không tìm thấy kết quả cho 'abc'." {
		t.Fatalf("unexpected no-results output: %q", out)
	}
}

func TestWebSearchProviderFailure(t *testing.T) {
	t.Parallel()

	ws := NewWebSearch(&fakeSearcher{err: errors.New("quota exceeded")})

	if _, err := ws.Execute(context.Background(), contractx.ToolInput{Question: "abc"}); err == nil {
		t.Fatalf("expected error from provider failure")
	}
}
