package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"weather-mcp/internal/metrics"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParamType is the JSON type of a tool parameter
type ParamType string

const (
	ParamNumber ParamType = "number"
	ParamString ParamType = "string"
)

// Param describes one tool parameter
type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required"`
	Default     any       `json:"default,omitempty"`
}

// HandlerFunc runs a tool. A returned error means the arguments were unusable;
// failures inside the tool are reported in the result instead.
type HandlerFunc func(ctx context.Context, args Arguments) (any, error)

// Tool is a named, described handler
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []Param     `json:"params"`
	Handler     HandlerFunc `json:"-"`
}

// ErrorResult is the whole result of a tool whose work failed
type ErrorResult struct {
	Error string `json:"error"`
}

// Registry maps tool names to tools. It is built once at startup and
// read-only afterwards.
type Registry struct {
	tools  map[string]Tool
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger.With("component", "tool-registry"),
	}
}

// Register adds a tool. Registering the same name twice is a programming error.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return errors.New("tool name is required")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %s has no handler", tool.Name)
	}
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tool %s is already registered", tool.Name)
	}
	r.tools[tool.Name] = tool
	return nil
}

// Lookup returns the tool with the given name
func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Tools returns all tools sorted by name
func (r *Registry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// Call runs the named tool with raw arguments
func (r *Registry) Call(ctx context.Context, name string, rawArgs map[string]any) (any, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	result, err := tool.Handler(ctx, NewArguments(rawArgs))
	if err != nil {
		metrics.ToolCalls.WithLabelValues(name, metrics.OutcomeInvalidArgument).Inc()
		r.logger.Warn("tool rejected arguments", "tool", name, "error", err)
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if _, failed := result.(ErrorResult); failed {
		outcome = metrics.OutcomeErrorResult
	}
	metrics.ToolCalls.WithLabelValues(name, outcome).Inc()

	r.logger.Debug("tool call completed", "tool", name, "outcome", outcome)
	return result, nil
}
