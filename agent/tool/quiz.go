package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const quizPrompt = `Dựa trên thông tin ngữ cảnh sau đây về chủ đề "%s", hãy tạo một bài kiểm tra trắc nghiệm.

Ngữ cảnh:
%s

Yêu cầu:
- Tạo 5 câu hỏi trắc nghiệm.
- Mỗi câu hỏi phải có 4 lựa chọn (A, B, C, D).
- Chỉ có một đáp án đúng cho mỗi câu.
- Đánh dấu rõ ràng đáp án đúng (ví dụ: bằng dấu * hoặc ghi chú riêng).
- Câu hỏi nên bao quát các khía cạnh quan trọng của chủ đề trong ngữ cảnh.

Định dạng output mong muốn:
Câu 1: [Nội dung câu hỏi]
A. [Lựa chọn A]
B. [Lựa chọn B]
C. [Lựa chọn C]
D. [Lựa chọn D]
Đáp án đúng: [Chữ cái]`

// QuizGenerator builds a multiple-choice quiz from document context.
type QuizGenerator struct {
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
}

var _ contractx.Tool = (*QuizGenerator)(nil)

func NewQuizGenerator(llm contractx.CompletionGateway, retriever contractx.Retriever) *QuizGenerator {
	return &QuizGenerator{llm: llm, retriever: retriever}
}

func (t *QuizGenerator) Name() string { return "Quiz_Generator" }

func (t *QuizGenerator) Description() string {
	return "Tạo câu hỏi trắc nghiệm (quiz) về một chủ đề cụ thể dựa trên tài liệu đã cung cấp."
}

func (t *QuizGenerator) NeedsContext() bool { return true }

func (t *QuizGenerator) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	topic := strings.TrimSpace(in.Question)
	if topic == "" {
		return "Vui lòng cung cấp chủ đề cho bài kiểm tra.", nil
	}

	contextStr, err := contextBlock(ctx, t.retriever, in, topic, true)
	if err != nil {
		return "", fmt.Errorf("retrieve context for %q: %w", topic, err)
	}
	if contextStr == "" {
		return fmt.Sprintf("Không tìm thấy thông tin về '%s' để tạo bài kiểm tra.", topic), nil
	}

	return t.llm.Complete(ctx, generatorSystem, fmt.Sprintf(quizPrompt, topic, contextStr))
}
