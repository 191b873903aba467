package handlers

import (
	"io"
	"net/http"

	"github.com/postmcp/codec"
	"github.com/postmcp/logger"
	"github.com/postmcp/mcp"
)

const maxMessageSize = 4 << 20

// MCP serves JSON-RPC messages posted to the MCP endpoint.
type MCP struct {
	protocol *mcp.Protocol
	log      *logger.Logger
}

func NewMCP(p *mcp.Protocol, log *logger.Logger) *MCP {
	return &MCP{protocol: p, log: log}
}

func (h *MCP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageSize))
	if err != nil {
		_ = codec.WriteJSONRPCError(w, codec.ParseError, "", nil)
		return
	}

	resp := h.protocol.HandleMessage(r.Context(), body)
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	if resp.Error != nil {
		h.log.Debug("rpc error", "code", resp.Error.Code, "message", resp.Error.Message)
	}
	if err := codec.WriteResponse(w, *resp); err != nil {
		h.log.Warn("failed to write rpc response", "error", err)
	}
}
