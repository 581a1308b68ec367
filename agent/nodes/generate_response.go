package assistantnode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// GenerateResponse synthesizes the final answer from the route's
// inputs and appends the turn to conversation memory. Synthesis
// failure degrades to an apology message.
func GenerateResponse(
	ctx context.Context,
	in *AssistantState,
	llm contractx.CompletionGateway,
	store contractx.MemoryStore,
	sessionID string,
	basePrompt string,
) (*AssistantState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil state", contractx.ErrValidation)
	}

	system, user := buildSynthesisPrompt(in, basePrompt)

	response, err := llm.Complete(ctx, system, user)
	if err != nil {
		log.Warn().Err(err).Msg("response generation failed")
		in.Response = fmt.Sprintf("Lỗi khi tạo phản hồi: %s", err)
		return in, nil
	}

	in.Response = response
	if store != nil {
		if err := store.Append(ctx, sessionID, in.Question, response); err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist conversation turn")
		}
	}
	return in, nil
}

func buildSynthesisPrompt(in *AssistantState, basePrompt string) (system, user string) {
	system = basePrompt
	parts := []string{fmt.Sprintf("Câu hỏi người dùng: %s\n", in.Question)}

	switch {
	case in.RouteDecision == contractx.RouteRAG:
		system += "\nHãy trả lời dựa vào ngữ cảnh tài liệu dưới đây."
		contextStr := in.Context
		if contextStr == "" {
			contextStr = "Không có ngữ cảnh."
		}
		parts = append(parts, "--- Ngữ cảnh ---", contextStr, "--- Kết thúc ngữ cảnh ---")
	case in.RouteDecision == contractx.RouteTool && len(in.ToolOutputs) > 0 && in.SelectedTool != "":
		toolResult, ok := in.ToolOutputs[in.SelectedTool]
		if !ok {
			toolResult = "Công cụ bị lỗi."
		}
		system += fmt.Sprintf("\nSử dụng kết quả từ công cụ '%s'.", in.SelectedTool)
		parts = append(parts,
			fmt.Sprintf("--- Kết quả từ '%s' ---", in.SelectedTool),
			toolResult,
			"--- Kết thúc kết quả ---",
		)
		if in.Context != "" {
			parts = append(parts, "\n--- Ngữ cảnh bổ sung ---", in.Context, "--- Kết thúc ngữ cảnh ---")
		}
	default:
		system += "\nTrả lời trực tiếp và tự nhiên."
	}

	if in.ChatHistory != "" {
		parts = append(parts, "\n--- Lịch sử hội thoại ---", in.ChatHistory, "--- Kết thúc lịch sử ---")
	}

	user = strings.Join(parts, "\n\n") + "\n\nCâu trả lời của EduMentor:"
	return system, user
}
