package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/postmcp/functions"
	"github.com/postmcp/logger"
	"github.com/postmcp/postman"
)

const (
	errInvalidBody  = "Invalid request body"
	errNameRequired = "Function name is required"
)

// Functions serves the function catalog and the call endpoint.
type Functions struct {
	dispatcher *functions.Dispatcher
	log        *logger.Logger
}

func NewFunctions(d *functions.Dispatcher, log *logger.Logger) *Functions {
	return &Functions{dispatcher: d, log: log}
}

func (h *Functions) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dispatcher.List())
}

func (h *Functions) Call(w http.ResponseWriter, r *http.Request) {
	var call functions.Call
	dec := json.NewDecoder(r.Body)
	// numbers stay exact until a handler decodes them
	dec.UseNumber()
	if err := dec.Decode(&call); err != nil {
		writeJSON(w, http.StatusBadRequest, functions.Failure(errors.New(errInvalidBody)))
		return
	}
	if call.Name == "" {
		writeJSON(w, http.StatusBadRequest, functions.Failure(errors.New(errNameRequired)))
		return
	}

	resp := h.dispatcher.Dispatch(r.Context(), call)
	code := StatusCode(resp)
	if code >= http.StatusInternalServerError {
		h.log.Error("function call failed", "function", call.Name, "error", resp.Error)
	}
	writeJSON(w, code, resp)
}

// StatusCode maps a dispatch outcome to an HTTP status.
func StatusCode(resp functions.Response) int {
	switch {
	case resp.OK():
		return http.StatusOK
	case errors.Is(resp.Err, functions.ErrFunctionNotFound):
		return http.StatusNotFound
	case errors.Is(resp.Err, postman.ErrValidation), errors.Is(resp.Err, functions.ErrInvalidArguments):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
