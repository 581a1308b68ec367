package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const mindMapPrompt = `Dựa trên thông tin sau, tạo sơ đồ tư duy cho chủ đề "%s".
Thông tin: %s

Sơ đồ tư duy nên có:
1. Chủ đề chính ở trung tâm
2. Các nhánh chính (khái niệm chính)
3. Các nhánh phụ (khái niệm phụ, kèm số slide nếu có)
4. Mối quan hệ giữa các khái niệm

Hãy trình bày sơ đồ tư duy dưới dạng văn bản có cấu trúc rõ ràng, sử dụng ký hiệu để thể hiện cấp độ và mối quan hệ.`

// MindMapCreator renders a text-form mind map from document context.
type MindMapCreator struct {
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
}

var _ contractx.Tool = (*MindMapCreator)(nil)

func NewMindMapCreator(llm contractx.CompletionGateway, retriever contractx.Retriever) *MindMapCreator {
	return &MindMapCreator{llm: llm, retriever: retriever}
}

func (t *MindMapCreator) Name() string { return "Mind_Map_Creator" }

func (t *MindMapCreator) Description() string {
	return "Tạo sơ đồ tư duy cho một chủ đề."
}

func (t *MindMapCreator) NeedsContext() bool { return true }

func (t *MindMapCreator) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	topic := strings.TrimSpace(in.Question)
	if topic == "" {
		return "Vui lòng cung cấp chủ đề để tạo sơ đồ tư duy.", nil
	}

	contextStr, err := contextBlock(ctx, t.retriever, in, topic, true)
	if err != nil {
		return "", fmt.Errorf("retrieve context for %q: %w", topic, err)
	}
	if contextStr == "" {
		return fmt.Sprintf("Không tìm thấy thông tin về '%s' để tạo sơ đồ tư duy.", topic), nil
	}

	return t.llm.Complete(ctx, generatorSystem, fmt.Sprintf(mindMapPrompt, topic, contextStr))
}
