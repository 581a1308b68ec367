package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/router.txt
	routerRaw string

	//go:embed template/synthesizer.txt
	synthesizerRaw string
)

// PromptSet holds loaded prompt content. Router carries one %s slot for the
// formatted tool description list.
type PromptSet struct {
	Router      string
	Synthesizer string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Router:      strings.TrimSpace(routerRaw),
		Synthesizer: strings.TrimSpace(synthesizerRaw),
	}
}
