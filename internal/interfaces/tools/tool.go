// Package tools is the surface the language-model client talks to: every
// capability of the server is a named tool with a JSON-Schema parameter
// description and a structured result.
package tools

import (
	"context"
	"fmt"
	"sync"
)

// Tool is the interface all LLM-callable tools implement.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema describing the tool's arguments.
	Parameters() map[string]any
	Execute(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Registry holds the registered tools, preserving registration order for
// listings.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(tools ...Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tools {
		if _, exists := r.tools[t.Name()]; exists {
			return fmt.Errorf("tool %q is already registered", t.Name())
		}
		r.tools[t.Name()] = t
		r.order = append(r.order, t.Name())
	}

	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.tools[name])
	}
	return result
}
