package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/postmcp/codec"
)

type RequestHandler func(ctx context.Context, params json.RawMessage) (any, error)
type NotificationHandler func(ctx context.Context, params json.RawMessage) error

type Protocol struct {
	mu sync.RWMutex

	reqHandlers          map[string]RequestHandler
	notificationHandlers map[string]NotificationHandler
}

func NewProtocol() *Protocol {
	return &Protocol{
		reqHandlers:          make(map[string]RequestHandler),
		notificationHandlers: make(map[string]NotificationHandler),
	}
}

func (p *Protocol) SetRequestHandler(method string, handler RequestHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reqHandlers[method] = handler
}

func (p *Protocol) SetNotificationHandler(method string, handler NotificationHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notificationHandlers[method] = handler
}

func (p *Protocol) HandleRequest(ctx context.Context, method string, params json.RawMessage) (any, error) {
	p.mu.RLock()
	handler, ok := p.reqHandlers[method]
	p.mu.RUnlock()
	if !ok {
		return nil, codec.NewError(codec.MethodNotFound, "")
	}
	return handler(ctx, params)
}

func (p *Protocol) HandleNotification(ctx context.Context, method string, params json.RawMessage) error {
	p.mu.RLock()
	handler, ok := p.notificationHandlers[method]
	p.mu.RUnlock()
	if !ok {
		return errors.New("notification method not found")
	}
	return handler(ctx, params)
}

// Handle answers a decoded request. Notifications yield a nil response.
func (p *Protocol) Handle(ctx context.Context, req *codec.JSONRPCRequest) *codec.JSONRPCResponse {
	if req.IsNotification() {
		// unknown notifications are dropped
		_ = p.HandleNotification(ctx, req.Method, req.Params)
		return nil
	}
	result, err := p.HandleRequest(ctx, req.Method, req.Params)
	if err != nil {
		resp := codec.NewErrorResponse(rpcError(err), req.ID)
		return &resp
	}
	resp := codec.NewResponse(result, req.ID)
	return &resp
}

// HandleMessage decodes one raw message and answers it.
func (p *Protocol) HandleMessage(ctx context.Context, b []byte) *codec.JSONRPCResponse {
	req, err := codec.DecodeRequest(b)
	if err != nil {
		var syntaxErr *json.SyntaxError
		code := codec.InvalidRequest
		if errors.As(err, &syntaxErr) {
			code = codec.ParseError
		}
		resp := codec.NewErrorResponse(codec.NewError(code, ""), nil)
		return &resp
	}
	return p.Handle(ctx, req)
}

func rpcError(err error) *codec.RPCError {
	var rpcErr *codec.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return codec.NewError(codec.InternalError, err.Error())
}
