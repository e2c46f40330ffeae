package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"weather-mcp/internal/tools"
)

// Server exposes a tool registry over the Model Context Protocol
type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
	logger   *slog.Logger
}

func NewServer(registry *tools.Registry, info tools.ServerInfo, logger *slog.Logger) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(info.Name, info.Version, server.WithToolCapabilities(false)),
		registry: registry,
		logger:   logger.With("component", "mcp-server"),
	}

	for _, tool := range registry.Tools() {
		s.mcp.AddTool(toMCPTool(tool), s.handler(tool.Name))
	}

	s.logger.Info("registered MCP tools", "count", len(registry.Tools()))
	return s
}

// MCP returns the underlying protocol server
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// HTTPHandler serves the protocol over streamable HTTP
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// ServeStdio serves the protocol over stdin/stdout until the input closes
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio")
	if err := server.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("stdio server stopped: %w", err)
	}
	return nil
}

func toMCPTool(tool tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}

	for _, param := range tool.Params {
		props := []mcp.PropertyOption{mcp.Description(param.Description)}
		if param.Required {
			props = append(props, mcp.Required())
		}

		switch param.Type {
		case tools.ParamNumber:
			if def, ok := param.Default.(float64); ok {
				props = append(props, mcp.DefaultNumber(def))
			}
			opts = append(opts, mcp.WithNumber(param.Name, props...))
		default:
			if def, ok := param.Default.(string); ok {
				props = append(props, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(param.Name, props...))
		}
	}

	return mcp.NewTool(tool.Name, opts...)
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.registry.Call(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if text, ok := result.(string); ok {
			return mcp.NewToolResultText(text), nil
		}

		body, err := json.Marshal(result)
		if err != nil {
			s.logger.Error("failed to encode tool result", "tool", name, "error", err)
			return nil, fmt.Errorf("failed to encode %s result: %w", name, err)
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
