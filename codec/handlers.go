package codec

import (
	"encoding/json"
	"net/http"
)

func ParseJSONRPCRequest(r *http.Request) (*JSONRPCRequest, error) {
	var req JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	if err := req.check(); err != nil {
		return nil, err
	}
	return &req, nil
}

func WriteJSONRPCResponse(w http.ResponseWriter, result any, id any) error {
	return WriteResponse(w, NewResponse(result, id))
}

func WriteJSONRPCError(w http.ResponseWriter, code int, message string, id any) error {
	return WriteResponse(w, NewErrorResponse(NewError(code, message), id))
}

// WriteResponse encodes a prepared response.
func WriteResponse(w http.ResponseWriter, resp JSONRPCResponse) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(resp)
}
