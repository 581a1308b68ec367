package assistantnode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

const retrieveTimeout = 15 * time.Second

// RetrieveContext searches the document store for passages relevant to
// the question. Failures degrade to a placeholder context so the
// workflow can still answer.
func RetrieveContext(
	ctx context.Context,
	in *AssistantState,
	retriever contractx.Retriever,
	topK int,
) (*AssistantState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil state", contractx.ErrValidation)
	}

	rctx, cancel := context.WithTimeout(ctx, retrieveTimeout)
	defer cancel()

	records, err := retriever.Search(rctx, in.Question, topK)
	if err != nil {
		log.Warn().Err(err).Msg("context retrieval failed")
		in.Context = fmt.Sprintf("Lỗi khi truy xuất: %s", err)
		in.ContextOK = false
		in.Sources = nil
		return in, nil
	}
	if len(records) == 0 {
		in.Context = "Không tìm thấy thông tin liên quan."
		in.ContextOK = false
		in.Sources = nil
		return in, nil
	}

	parts := make([]string, 0, len(records))
	for i, rec := range records {
		parts = append(parts, fmt.Sprintf("[Nguồn %d]: %s", i+1, strings.TrimSpace(rec.Text)))
	}
	in.Context = strings.Join(parts, "\n\n")
	in.ContextOK = true
	in.Sources = records
	return in, nil
}
