package stdio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postmcp/codec"
)

func echo(_ context.Context, msg []byte) *codec.JSONRPCResponse {
	req, err := codec.DecodeRequest(msg)
	if err != nil {
		resp := codec.NewErrorResponse(codec.NewError(codec.ParseError, ""), nil)
		return &resp
	}
	if req.IsNotification() {
		return nil
	}
	resp := codec.NewResponse(req.Method, req.ID)
	return &resp
}

func TestServe_OneResponsePerRequest(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		``,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`not json`,
	}, "\n")
	var out bytes.Buffer

	require.NoError(t, Serve(t.Context(), strings.NewReader(in), &out, echo))

	var lines []codec.JSONRPCResponse
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var resp codec.JSONRPCResponse
		require.NoError(t, json.Unmarshal(sc.Bytes(), &resp))
		lines = append(lines, resp)
	}
	require.Len(t, lines, 3)
	assert.Equal(t, "ping", lines[0].Result)
	assert.Equal(t, "tools/list", lines[1].Result)
	require.NotNil(t, lines[2].Error)
	assert.Equal(t, codec.ParseError, lines[2].Error.Code)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := Serve(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &bytes.Buffer{}, echo)
	assert.ErrorIs(t, err, context.Canceled)
}
