package assistantnode

import (
	"context"
	"fmt"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// ExecuteTool runs the selected tool and records its output under the
// tool's name. A tool failure becomes a readable output entry instead
// of failing the workflow.
func ExecuteTool(
	ctx context.Context,
	in *AssistantState,
	tools ToolCatalog,
) (*AssistantState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil state", contractx.ErrValidation)
	}
	if in.ToolOutputs == nil {
		in.ToolOutputs = make(map[string]string)
	}
	if in.SelectedTool == "" {
		in.ToolOutputs["error"] = "Không có công cụ nào được chọn."
		return in, nil
	}

	toolIn := contractx.ToolInput{
		Question:    in.Question,
		ChatHistory: in.ChatHistory,
	}
	if in.ContextOK {
		toolIn.Context = in.Context
		toolIn.Sources = in.Sources
	}

	out, err := tools.Execute(ctx, in.SelectedTool, toolIn)
	if err != nil {
		in.ToolOutputs[in.SelectedTool] = fmt.Sprintf("error executing tool '%s': %s", in.SelectedTool, err)
		return in, nil
	}

	in.ToolOutputs[in.SelectedTool] = out
	return in, nil
}
