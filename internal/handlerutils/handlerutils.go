package handlerutils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIHandler is a http handler that returns its error instead of writing an
// error response itself. Conversion to a response happens in one place, the
// middlewares.ErrorHandler wrapper.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

// errorEnvelope is the fixed failure shape. Clients depend on these exact
// keys, do not change them.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func ParseJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}

	return json.NewDecoder(r.Body).Decode(v)
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if v == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(v)
}

func WriteErrorJSON(w http.ResponseWriter, statusCode int, kind string, message string) {
	// ignore the encode error here, there is nothing left to tell the client
	WriteJSON(
		w,
		statusCode,
		errorEnvelope{
			Error:   kind,
			Message: message,
			Status:  statusCode,
		},
	)
}
