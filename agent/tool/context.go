package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// System instruction shared by the generator tools when they call the
// completion gateway directly.
const generatorSystem = "Bạn là EduMentor, một trợ lý học tập AI thông minh và thân thiện."

// contextBlock returns the document context for a topic, preferring the
// block the pipeline already retrieved. An empty return with a nil error
// means no documents matched.
func contextBlock(ctx context.Context, r contractx.Retriever, in contractx.ToolInput, topic string, withSlides bool) (string, error) {
	if strings.TrimSpace(in.Context) != "" {
		return in.Context, nil
	}
	if r == nil {
		return "", nil
	}

	docs, err := r.Search(ctx, topic, 0)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		text := strings.TrimSpace(doc.Text)
		if withSlides && doc.SlideNumber > 0 {
			parts = append(parts, fmt.Sprintf("Slide %d: %s", doc.SlideNumber, text))
		} else {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}
