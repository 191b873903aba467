package mcp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postmcp/codec"
	"github.com/postmcp/functions"
	"github.com/postmcp/logger"
	"github.com/postmcp/postman"
)

func newTestProtocol(t *testing.T, upstream http.HandlerFunc) *Protocol {
	t.Helper()
	return newLoggedTestProtocol(t, upstream, io.Discard)
}

func newLoggedTestProtocol(t *testing.T, upstream http.HandlerFunc, logs io.Writer) *Protocol {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client, err := postman.New(postman.Config{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	registry, err := functions.NewPostmanRegistry(client)
	require.NoError(t, err)
	return NewToolServer(functions.NewDispatcher(registry), NewServerInfo("postmcp", "test"),
		logger.NewLoggerTo("mcp-test", "test", logs))
}

func roundTrip(t *testing.T, p *Protocol, msg string) codec.JSONRPCResponse {
	t.Helper()
	resp := p.HandleMessage(t.Context(), []byte(msg))
	require.NotNil(t, resp)

	// go through the wire format so results compare as plain JSON values
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	var out codec.JSONRPCResponse
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func notCalled(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func TestInitialize(t *testing.T) {
	var logs bytes.Buffer
	p := newLoggedTestProtocol(t, notCalled(t), &logs)
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{"roots":{"listChanged":true}},"clientInfo":{"name":"inspector","version":"0.9"}}}`)

	require.Nil(t, resp.Error)
	result := resp.Result.(map[string]any)
	assert.Equal(t, ProtocolVersion, result["protocolVersion"])
	assert.Equal(t, map[string]any{"name": "postmcp", "version": "test"}, result["serverInfo"])
	assert.Contains(t, result["capabilities"], "tools")

	assert.Contains(t, logs.String(), "client=inspector")
	assert.Contains(t, logs.String(), "client_version=0.9")
	assert.Contains(t, logs.String(), "protocol_version=2024-11-05")
	assert.Contains(t, logs.String(), "roots=true")
	assert.Contains(t, logs.String(), "sampling=false")
}

func TestInitialize_BadParams(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"clientInfo":"nope"}}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codec.InvalidParams, resp.Error.Code)
}

func TestPing(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":"a","method":"ping"}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, map[string]any{}, resp.Result)
	assert.Equal(t, "a", resp.ID)
}

func TestToolsList(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Nil(t, resp.Error)

	tools := resp.Result.(map[string]any)["tools"].([]any)
	require.Len(t, tools, 10)
	first := tools[0].(map[string]any)
	assert.Equal(t, functions.SayHello, first["name"])
	schema := first["inputSchema"].(map[string]any)
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"name"}, schema["required"])
}

func TestToolsCall_Success(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"mcp__sayHello","arguments":{"name":"Ada"}}}`)
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]any)
	assert.NotContains(t, result, "isError")
	assert.Equal(t, []any{map[string]any{
		"type": "text",
		"text": "Hello, Ada! Welcome to the Postman MCP Server.",
	}}, result["content"])
}

func TestToolsCall_RemoteFailure(t *testing.T) {
	p := newTestProtocol(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"name":"instanceNotFoundError"}}`))
	})
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"mcp__get_collection","arguments":{"collectionId":"c-1"}}}`)
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]any)
	assert.Equal(t, true, result["isError"])
	assert.Equal(t, []any{map[string]any{
		"type": "text",
		"text": "Failed to retrieve collection with ID c-1",
	}}, result["content"])
}

func TestToolsCall_StructuredContent(t *testing.T) {
	p := newTestProtocol(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"collections":[]}`))
	})
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"mcp__get_collections"}}`)
	require.Nil(t, resp.Error)

	content := resp.Result.(map[string]any)["content"].([]any)
	text := content[0].(map[string]any)["text"].(string)
	assert.JSONEq(t, `{"collections":[]}`, text)
}

func TestToolsCall_UnknownTool(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"nope"}}`)
	require.Nil(t, resp.Error)
	result := resp.Result.(map[string]any)
	assert.Equal(t, true, result["isError"])
	assert.Equal(t, "Function nope not found", result["content"].([]any)[0].(map[string]any)["text"])
}

func TestProtocolErrors(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))

	cases := map[string]struct {
		msg  string
		code int
	}{
		"parse error":     {`{"jsonrpc":`, codec.ParseError},
		"invalid request": {`{"jsonrpc":"1.0","id":1,"method":"ping"}`, codec.InvalidRequest},
		"unknown method":  {`{"jsonrpc":"2.0","id":1,"method":"resources/list"}`, codec.MethodNotFound},
		"missing name":    {`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{}}`, codec.InvalidParams},
		"bad params":      {`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":[1]}`, codec.InvalidParams},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp := roundTrip(t, p, tc.msg)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestNotificationHasNoResponse(t *testing.T) {
	p := newTestProtocol(t, notCalled(t))
	assert.Nil(t, p.HandleMessage(t.Context(), []byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)))
	assert.Nil(t, p.HandleMessage(t.Context(), []byte(`{"jsonrpc":"2.0","method":"notifications/unknown"}`)))
}

func TestToolsCall_NumericArgumentKeepsDigits(t *testing.T) {
	var gotPath string
	p := newTestProtocol(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"collection":{}}`))
	})
	resp := roundTrip(t, p, `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"mcp__get_collection","arguments":{"collectionId":12345678901234567890}}}`)
	require.Nil(t, resp.Error)
	assert.NotContains(t, resp.Result.(map[string]any), "isError")
	assert.Equal(t, "/collections/12345678901234567890", gotPath)
}
