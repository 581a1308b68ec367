package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const summaryPrompt = `Dựa trên thông tin sau, tạo bản tóm tắt ngắn gọn và dễ hiểu về chủ đề "%s".
Thông tin: %s

Bản tóm tắt nên bao gồm:
1. Định nghĩa và khái niệm chính
2. Các điểm quan trọng nhất
3. Ứng dụng hoặc ý nghĩa thực tiễn
4. Kết luận ngắn gọn

Hãy viết tóm tắt trong khoảng 300-500 từ, ngắn gọn nhưng đầy đủ thông tin quan trọng.`

// SummaryGenerator condenses document context into a short summary.
type SummaryGenerator struct {
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
}

var _ contractx.Tool = (*SummaryGenerator)(nil)

func NewSummaryGenerator(llm contractx.CompletionGateway, retriever contractx.Retriever) *SummaryGenerator {
	return &SummaryGenerator{llm: llm, retriever: retriever}
}

func (t *SummaryGenerator) Name() string { return "Summary_Generator" }

func (t *SummaryGenerator) Description() string {
	return "Tạo tóm tắt cho một chủ đề."
}

func (t *SummaryGenerator) NeedsContext() bool { return true }

func (t *SummaryGenerator) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	topic := strings.TrimSpace(in.Question)
	if topic == "" {
		return "Vui lòng cung cấp chủ đề để tạo tóm tắt.", nil
	}

	contextStr, err := contextBlock(ctx, t.retriever, in, topic, false)
	if err != nil {
		return "", fmt.Errorf("retrieve context for %q: %w", topic, err)
	}
	if contextStr == "" {
		return fmt.Sprintf("Không tìm thấy thông tin về '%s' để tạo tóm tắt.", topic), nil
	}

	return t.llm.Complete(ctx, generatorSystem, fmt.Sprintf(summaryPrompt, topic, contextStr))
}
