package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// Registry is an immutable name -> Tool lookup built once at startup. It is
// safe for unsynchronized concurrent reads; there is no way to mutate it
// after construction.
type Registry struct {
	tools map[string]contractx.Tool
	names []string
}

func NewRegistry(tools ...contractx.Tool) (*Registry, error) {
	byName := make(map[string]contractx.Tool, len(tools))
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		if t == nil {
			return nil, fmt.Errorf("%w: nil tool", contractx.ErrValidation)
		}
		name := strings.TrimSpace(t.Name())
		if name == "" {
			return nil, fmt.Errorf("%w: tool name is empty", contractx.ErrValidation)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate tool %q", contractx.ErrValidation, name)
		}
		byName[name] = t
		names = append(names, name)
	}
	sort.Strings(names)
	return &Registry{tools: byName, names: names}, nil
}

func MustNewRegistry(tools ...contractx.Tool) *Registry {
	r, err := NewRegistry(tools...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

func (r *Registry) Get(name string) (contractx.Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// NeedsContext reports whether the named tool wants retrieved context
// before execution. Unknown names report false; the router only ever asks
// about names it has already validated against the registry.
func (r *Registry) NeedsContext(name string) bool {
	t, ok := r.tools[name]
	return ok && t.NeedsContext()
}

// Describe renders the tool list for the routing prompt, one
// "- name: description" line per tool.
func (r *Registry) Describe() string {
	if len(r.names) == 0 {
		return "Không có công cụ nào được mô tả."
	}
	lines := make([]string, 0, len(r.names))
	for _, name := range r.names {
		lines = append(lines, fmt.Sprintf("- %s: %s", name, r.tools[name].Description()))
	}
	return strings.Join(lines, "\n")
}

// Execute dispatches to a registered tool and surfaces its failure as an
// error. The tool stage converts failures into result strings; direct
// callers bypassing routing see the error itself.
func (r *Registry) Execute(ctx context.Context, name string, in contractx.ToolInput) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", contractx.ErrToolNotFound, name)
	}
	return t.Execute(ctx, in)
}
