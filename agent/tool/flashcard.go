package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const flashcardPrompt = `Dựa trên thông tin sau, tạo bộ flashcard học tập cho chủ đề "%s".
Thông tin: %s

Tạo 10 flashcard, mỗi flashcard có định dạng:
FLASHCARD #[số]:
Mặt trước: [Câu hỏi hoặc thuật ngữ]
Mặt sau: [Câu trả lời hoặc định nghĩa, kèm số slide nếu có]

Flashcard nên bao gồm các khái niệm quan trọng, định nghĩa, công thức, và ứng dụng liên quan đến chủ đề. Sắp xếp theo thứ tự slide nếu có.`

// FlashcardGenerator builds study flashcards from document context.
type FlashcardGenerator struct {
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
}

var _ contractx.Tool = (*FlashcardGenerator)(nil)

func NewFlashcardGenerator(llm contractx.CompletionGateway, retriever contractx.Retriever) *FlashcardGenerator {
	return &FlashcardGenerator{llm: llm, retriever: retriever}
}

func (t *FlashcardGenerator) Name() string { return "Flashcard_Generator" }

func (t *FlashcardGenerator) Description() string {
	return "Tạo flashcards cho một chủ đề."
}

func (t *FlashcardGenerator) NeedsContext() bool { return true }

func (t *FlashcardGenerator) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	topic := strings.TrimSpace(in.Question)
	if topic == "" {
		return "Vui lòng cung cấp chủ đề để tạo flashcard.", nil
	}

	contextStr, err := contextBlock(ctx, t.retriever, in, topic, true)
	if err != nil {
		return "", fmt.Errorf("retrieve context for %q: %w", topic, err)
	}
	if contextStr == "" {
		return fmt.Sprintf("Không tìm thấy thông tin về '%s' để tạo flashcard.", topic), nil
	}

	return t.llm.Complete(ctx, generatorSystem, fmt.Sprintf(flashcardPrompt, topic, contextStr))
}
