package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/postmcp/codec"
)

const maxLineSize = 4 << 20

// MessageHandler answers one raw JSON-RPC message. A nil response means
// nothing is written back.
type MessageHandler func(ctx context.Context, msg []byte) *codec.JSONRPCResponse

// Serve reads newline-delimited messages from in until EOF or ctx is done
// and writes one response line per answered message to out.
func Serve(ctx context.Context, in io.Reader, out io.Writer, handler MessageHandler) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp := handler(ctx, line)
		if resp == nil {
			continue
		}
		if err := WriteStdioMessage(enc, resp); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stdio scanner error: %w", err)
	}
	return nil
}

func WriteStdioMessage(enc *json.Encoder, msg any) error {
	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to write stdio message: %w", err)
	}
	return nil
}
