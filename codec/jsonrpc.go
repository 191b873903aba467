package codec

import (
	"encoding/json"
	"errors"
)

const JsonRPCVersion = "2.0"

type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

// IsNotification reports whether the request expects no response.
func (r *JSONRPCRequest) IsNotification() bool { return r.ID == nil }

type JSONRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
	ID      any       `json:"id"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string { return e.Message }

// JSON-RPC 2.0 standard error codes
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

var rpcErrorMessages = map[int]string{
	ParseError:     "Parse error",
	InvalidRequest: "Invalid Request",
	MethodNotFound: "Method not found",
	InvalidParams:  "Invalid params",
	InternalError:  "Internal error",
}

// NewError builds an RPCError, falling back to the standard message for code.
func NewError(code int, message string) *RPCError {
	if message == "" {
		message = rpcErrorMessages[code]
	}
	return &RPCError{Code: code, Message: message}
}

func NewResponse(result any, id any) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRPC: JsonRPCVersion,
		Result:  result,
		ID:      id,
	}
}

func NewErrorResponse(err *RPCError, id any) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRPC: JsonRPCVersion,
		Error:   err,
		ID:      id,
	}
}

// DecodeRequest parses and checks a single JSON-RPC request.
func DecodeRequest(b []byte) (*JSONRPCRequest, error) {
	var req JSONRPCRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, err
	}
	if err := req.check(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *JSONRPCRequest) check() error {
	if r.JSONRPC != JsonRPCVersion {
		return errors.New("invalid jsonrpc version")
	}
	if r.Method == "" {
		return errors.New("missing method")
	}
	return nil
}
