package assistantnode

import (
	"strings"
	"testing"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

func TestFormatSourcesCapsAtThree(t *testing.T) {
	t.Parallel()

	st := &AssistantState{
		Response:      "Trả lời.",
		RouteDecision: contractx.RouteRAG,
		Sources: []contractx.SourceRecord{
			{SourceFile: "a.pdf", PageNumber: 1},
			{SourceFile: "b.pdf", PageNumber: 2},
			{SourceFile: "c.pdf", PageNumber: 3},
			{SourceFile: "d.pdf", PageNumber: 4},
		},
	}

	out, err := FormatSources(st)
	if err != nil {
		t.Fatalf("FormatSources() error = %v", err)
	}
	if strings.Contains(out.Response, "d.pdf") {
		t.Fatalf("expected at most 3 citations, got %q", out.Response)
	}
	if !strings.Contains(out.Response, "3. Từ 'c.pdf' (Trang 3)") {
		t.Fatalf("expected third citation, got %q", out.Response)
	}
}

func TestFormatSourcesSlidePrecedence(t *testing.T) {
	t.Parallel()

	st := &AssistantState{
		Response:      "Trả lời.",
		RouteDecision: contractx.RouteRAG,
		Sources: []contractx.SourceRecord{
			{SourceFile: "deck.pptx", SlideNumber: 9, PageNumber: 2},
		},
	}

	out, err := FormatSources(st)
	if err != nil {
		t.Fatalf("FormatSources() error = %v", err)
	}
	if !strings.Contains(out.Response, "(Slide 9)") {
		t.Fatalf("expected slide citation, got %q", out.Response)
	}
	if strings.Contains(out.Response, "Trang") {
		t.Fatalf("slide number must win over page number, got %q", out.Response)
	}
}

func TestFormatSourcesUnknownFile(t *testing.T) {
	t.Parallel()

	st := &AssistantState{
		Response:      "Trả lời.",
		RouteDecision: contractx.RouteRAG,
		Sources:       []contractx.SourceRecord{{Text: "x"}},
	}

	out, err := FormatSources(st)
	if err != nil {
		t.Fatalf("FormatSources() error = %v", err)
	}
	if !strings.Contains(out.Response, "1. Từ 'Không rõ'") {
		t.Fatalf("expected placeholder file name, got %q", out.Response)
	}
}

func TestFormatSourcesSkipsWhenNotCited(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		st   *AssistantState
	}{
		{"empty response", &AssistantState{RouteDecision: contractx.RouteRAG, Sources: []contractx.SourceRecord{{SourceFile: "a.pdf"}}}},
		{"no sources", &AssistantState{Response: "ok", RouteDecision: contractx.RouteRAG}},
		{"direct route", &AssistantState{Response: "ok", RouteDecision: contractx.RouteDirect, Sources: []contractx.SourceRecord{{SourceFile: "a.pdf"}}}},
		{"tool without context", &AssistantState{Response: "ok", RouteDecision: contractx.RouteTool, NeedsContext: false, Sources: []contractx.SourceRecord{{SourceFile: "a.pdf"}}}},
	}

	for _, tc := range cases {
		before := tc.st.Response
		out, err := FormatSources(tc.st)
		if err != nil {
			t.Fatalf("%s: FormatSources() error = %v", tc.name, err)
		}
		if out.Response != before {
			t.Fatalf("%s: response must be unchanged, got %q", tc.name, out.Response)
		}
	}
}
