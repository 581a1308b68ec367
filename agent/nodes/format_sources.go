package assistantnode

import (
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const maxCitedSources = 3

// FormatSources appends a citation block to the response when the
// route actually consumed retrieved documents.
func FormatSources(in *AssistantState) (*AssistantState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil state", contractx.ErrValidation)
	}

	if in.Response == "" || len(in.Sources) == 0 {
		return in, nil
	}
	cited := in.RouteDecision == contractx.RouteRAG ||
		(in.RouteDecision == contractx.RouteTool && in.NeedsContext)
	if !cited {
		return in, nil
	}

	var b strings.Builder
	b.WriteString("\n\n**Nguồn tham khảo:**\n")
	for i, src := range in.Sources {
		if i == maxCitedSources {
			break
		}
		name := src.SourceFile
		if name == "" {
			name = "Không rõ"
		}
		fmt.Fprintf(&b, "%d. Từ '%s'", i+1, name)
		if src.SlideNumber > 0 {
			fmt.Fprintf(&b, " (Slide %d)", src.SlideNumber)
		} else if src.PageNumber > 0 {
			fmt.Fprintf(&b, " (Trang %d)", src.PageNumber)
		}
		b.WriteString("\n")
	}

	in.Response += b.String()
	return in, nil
}
