package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const conceptPrompt = `Dựa trên thông tin sau, giải thích chi tiết khái niệm "%s".
Thông tin: %s

Giải thích nên bao gồm:
1. Định nghĩa ngắn gọn
2. Giải thích chi tiết bằng ngôn ngữ đơn giản
3. Ví dụ minh họa cụ thể
4. Ứng dụng thực tế (nếu có)
5. Các khái niệm liên quan

Hãy giải thích bằng tiếng Việt, rõ ràng và dễ hiểu.`

// ConceptExplainer explains a single concept in plain language using
// document context when available.
type ConceptExplainer struct {
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
}

var _ contractx.Tool = (*ConceptExplainer)(nil)

func NewConceptExplainer(llm contractx.CompletionGateway, retriever contractx.Retriever) *ConceptExplainer {
	return &ConceptExplainer{llm: llm, retriever: retriever}
}

func (t *ConceptExplainer) Name() string { return "Concept_Explainer" }

func (t *ConceptExplainer) Description() string {
	return "Giải thích chi tiết một khái niệm cụ thể."
}

func (t *ConceptExplainer) NeedsContext() bool { return true }

func (t *ConceptExplainer) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	concept := strings.TrimSpace(in.Question)
	if concept == "" {
		return "Vui lòng cung cấp khái niệm cần giải thích.", nil
	}

	contextStr, err := contextBlock(ctx, t.retriever, in, concept, false)
	if err != nil {
		return "", fmt.Errorf("retrieve context for %q: %w", concept, err)
	}
	if contextStr == "" {
		return fmt.Sprintf("Không tìm thấy thông tin về '%s' trong tài liệu.", concept), nil
	}

	return t.llm.Complete(ctx, generatorSystem, fmt.Sprintf(conceptPrompt, concept, contextStr))
}
