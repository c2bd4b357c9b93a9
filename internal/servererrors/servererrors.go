package servererrors

import "net/http"

// Kind is the client-visible error class. The middleware error handler
// matches on it exhaustively, so no other kinds may exist.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindNotFound   Kind = "NotFoundError"
	KindServer     Kind = "ServerError"
)

// ServerError is the only error type that crosses a service boundary.
// Message is safe to echo to clients; Err is for server-side logs only.
type ServerError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *ServerError {
	return &ServerError{
		Kind:       KindValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func NewNotFound(message string) *ServerError {
	return &ServerError{
		Kind:       KindNotFound,
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// NewServer wraps an unexpected failure. The cause is kept for logging but
// never reaches the client; only message does.
func NewServer(message string, err error) *ServerError {
	return &ServerError{
		Kind:       KindServer,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Err:        err,
	}
}
