package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseJSONRPCRequest(t *testing.T) {
	requestData := JSONRPCRequest{
		JSONRPC: JsonRPCVersion,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"mcp__sayHello"}`),
		ID:      1,
	}
	buf := new(bytes.Buffer)
	err := json.NewEncoder(buf).Encode(requestData)
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}
	r := httptest.NewRequest("POST", "/mcp", buf)

	parsedReq, err := ParseJSONRPCRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsedReq.Method != requestData.Method {
		t.Errorf("expected method %s, got %s", requestData.Method, parsedReq.Method)
	}
	if parsedReq.JSONRPC != JsonRPCVersion {
		t.Errorf("expected jsonrpc %s, got %s", JsonRPCVersion, parsedReq.JSONRPC)
	}
	if parsedReq.IsNotification() {
		t.Errorf("request with id reported as notification")
	}
}

func TestParseJSONRPCRequest_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"bad version":    `{"jsonrpc":"1.0","method":"ping","id":1}`,
		"missing method": `{"jsonrpc":"2.0","id":1}`,
		"not json":       `{`,
	} {
		r := httptest.NewRequest("POST", "/mcp", strings.NewReader(body))
		if _, err := ParseJSONRPCRequest(r); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDecodeRequest_Notification(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.IsNotification() {
		t.Errorf("expected notification")
	}
}

func TestWriteJSONRPCResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	if err := WriteJSONRPCResponse(recorder, map[string]string{"result": "ok"}, 42); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	res := recorder.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	var response JSONRPCResponse
	err := json.Unmarshal(body, &response)
	if err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if response.JSONRPC != JsonRPCVersion {
		t.Errorf("expected jsonrpc %s, got %s", JsonRPCVersion, response.JSONRPC)
	}
	if response.ID.(float64) != 42 {
		t.Errorf("expected 42, got %v", response.ID)
	}
	if response.Result == nil {
		t.Errorf("expected result, got nil")
	}
}

func TestWriteJSONRPCError(t *testing.T) {
	recorder := httptest.NewRecorder()
	if err := WriteJSONRPCError(recorder, MethodNotFound, "", "abc"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	res := recorder.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	var response JSONRPCResponse
	err := json.Unmarshal(body, &response)
	if err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}

	if response.JSONRPC != JsonRPCVersion {
		t.Errorf("expected jsonrpc %s, got %s", JsonRPCVersion, response.JSONRPC)
	}
	if response.Error == nil {
		t.Fatal("expected error object, got nil")
	}
	if response.Error.Code != MethodNotFound {
		t.Errorf("expected error code -32601, got %d", response.Error.Code)
	}
	if response.Error.Message != "Method not found" {
		t.Errorf("expected default message, got %q", response.Error.Message)
	}
	if response.ID != "abc" {
		t.Errorf("expected id 'abc', got %v", response.ID)
	}
}

func TestErrorResponseKeepsNullID(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse(NewError(ParseError, ""), nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"id":null`) {
		t.Errorf("expected explicit null id, got %s", b)
	}
}
