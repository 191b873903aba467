package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	"github.com/postmcp/codec"
	"github.com/postmcp/functions"
	"github.com/postmcp/logger"
)

type Tool struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	InputSchema functions.Parameters `json:"inputSchema"`
}

type ToolsListResult struct {
	Tools []Tool `json:"tools"`
}

type ToolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type CallToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// NewToolServer returns a Protocol answering the MCP lifecycle and tool
// methods, with tools/call routed through the dispatcher.
func NewToolServer(d *functions.Dispatcher, info ServerInfo, log *logger.Logger) *Protocol {
	p := NewProtocol()
	p.SetRequestHandler(MethodInitialize, func(_ context.Context, params json.RawMessage) (any, error) {
		if len(params) > 0 {
			var ip InitializeParams
			if err := json.Unmarshal(params, &ip); err != nil {
				return nil, codec.NewError(codec.InvalidParams, err.Error())
			}
			log.Info("client initialized",
				"client", ip.ClientInfo.Name,
				"client_version", ip.ClientInfo.Version,
				"protocol_version", ip.ProtocolVersion,
				"roots", ip.Capabilities.Roots != nil,
				"sampling", ip.Capabilities.Sampling != nil,
			)
		}
		return NewInitializeResult(info), nil
	})
	p.SetRequestHandler(MethodPing, func(context.Context, json.RawMessage) (any, error) {
		return struct{}{}, nil
	})
	p.SetRequestHandler(MethodToolsList, func(context.Context, json.RawMessage) (any, error) {
		return listTools(d), nil
	})
	p.SetRequestHandler(MethodToolsCall, func(ctx context.Context, params json.RawMessage) (any, error) {
		var cp ToolsCallParams
		dec := json.NewDecoder(bytes.NewReader(params))
		dec.UseNumber()
		if err := dec.Decode(&cp); err != nil {
			return nil, codec.NewError(codec.InvalidParams, err.Error())
		}
		if cp.Name == "" {
			return nil, codec.NewError(codec.InvalidParams, "Tool name is required")
		}
		return callTool(ctx, d, cp), nil
	})
	p.SetNotificationHandler(NotificationInitialized, func(context.Context, json.RawMessage) error { return nil })
	p.SetNotificationHandler(NotificationCancelled, func(context.Context, json.RawMessage) error { return nil })
	return p
}

func listTools(d *functions.Dispatcher) ToolsListResult {
	defs := d.List()
	tools := make([]Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Parameters,
		})
	}
	return ToolsListResult{Tools: tools}
}

func callTool(ctx context.Context, d *functions.Dispatcher, cp ToolsCallParams) CallToolResult {
	keys := make([]string, 0, len(cp.Arguments))
	for k := range cp.Arguments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	params := make([]functions.Parameter, 0, len(keys))
	for _, k := range keys {
		params = append(params, functions.P(k, cp.Arguments[k]))
	}

	resp := d.Dispatch(ctx, functions.NewCall(cp.Name, params...))
	if !resp.OK() {
		return CallToolResult{
			Content: []Content{{Type: "text", Text: resp.Error}},
			IsError: true,
		}
	}
	return CallToolResult{Content: []Content{{Type: "text", Text: render(resp.Content)}}}
}

func render(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(b)
}
