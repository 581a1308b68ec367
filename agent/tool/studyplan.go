package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const studyPlanPrompt = `Dựa trên thông tin sau, tạo kế hoạch học tập chi tiết cho môn "%s".
Thông tin: %s

Kế hoạch học tập nên bao gồm:
1. Mục tiêu học tập
2. Lộ trình học theo tuần (ít nhất 4 tuần)
3. Các chủ đề cần học theo thứ tự
4. Thời gian ước tính cho mỗi chủ đề
5. Gợi ý tài liệu và phương pháp học

Hãy trình bày kế hoạch bằng tiếng Việt, rõ ràng và khả thi.`

// StudyPlanCreator generates a study plan from document context and
// registers the subject with the progress store.
type StudyPlanCreator struct {
	llm       contractx.CompletionGateway
	retriever contractx.Retriever
	store     *ProgressStore
}

var _ contractx.Tool = (*StudyPlanCreator)(nil)

func NewStudyPlanCreator(llm contractx.CompletionGateway, retriever contractx.Retriever, store *ProgressStore) *StudyPlanCreator {
	return &StudyPlanCreator{llm: llm, retriever: retriever, store: store}
}

func (t *StudyPlanCreator) Name() string { return "Study_Plan_Creator" }

func (t *StudyPlanCreator) Description() string {
	return "Tạo kế hoạch học tập cho một môn học."
}

func (t *StudyPlanCreator) NeedsContext() bool { return true }

func (t *StudyPlanCreator) Execute(ctx context.Context, in contractx.ToolInput) (string, error) {
	subject := strings.TrimSpace(in.Question)
	if subject == "" {
		return "Vui lòng cung cấp môn học để tạo kế hoạch.", nil
	}

	contextStr, err := contextBlock(ctx, t.retriever, in, subject, false)
	if err != nil {
		return "", fmt.Errorf("retrieve context for %q: %w", subject, err)
	}
	if contextStr == "" {
		return fmt.Sprintf("Không tìm thấy thông tin về '%s' để tạo kế hoạch học tập.", subject), nil
	}

	plan, err := t.llm.Complete(ctx, generatorSystem, fmt.Sprintf(studyPlanPrompt, subject, contextStr))
	if err != nil {
		return "", err
	}

	if t.store != nil {
		t.store.SavePlan(subject, plan)
	}
	return plan, nil
}
