package middlewares

import (
	"errors"
	"net/http"

	"github.com/pranav-foods/spice-store-backend/internal/handlerutils"
	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
)

// ErrorHandler is a middleware that takes a handler that returns an error and
// returns a HandlerFunc to create centralized error handling and logging.
// It is the only place a failure becomes a client response.
func (mw *middleware) ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var serverError *servererrors.ServerError
		if errors.As(err, &serverError) {
			if cause := serverError.Unwrap(); cause != nil {
				mw.log.WithError(cause).
					WithField("path", r.URL.Path).
					Error(serverError.Message)
			}

			handlerutils.WriteErrorJSON(
				w,
				serverError.StatusCode,
				string(serverError.Kind),
				serverError.Message,
			)
			return
		}

		// anything unclassified is a server fault and its detail stays here
		mw.log.WithError(err).
			WithField("path", r.URL.Path).
			Error("unhandled error")

		handlerutils.WriteErrorJSON(
			w,
			http.StatusInternalServerError,
			string(servererrors.KindServer),
			"Internal Server Error",
		)
	}
}
