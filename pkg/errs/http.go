package errs

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ErrResponse is used as the response body for all errors
// returned by the HTTP API.
type ErrResponse struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind,omitempty"`
	Param  string `json:"param,omitempty"`
}

// HTTPErrorResponse takes a writer, logger and error, logs the error and
// writes an appropriate status code and JSON body to the writer.
func HTTPErrorResponse(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if err == nil {
		nilErrorResponse(w, logger)
		return
	}

	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case Unauthenticated:
			unauthenticatedErrorResponse(w, logger, e)
			return
		case Unauthorized:
			unauthorizedErrorResponse(w, logger, e)
			return
		default:
			typicalErrorResponse(w, logger, e)
			return
		}
	}

	unknownErrorResponse(w, logger, err)
}

func typicalErrorResponse(w http.ResponseWriter, logger zerolog.Logger, e *Error) {
	httpStatusCode := httpErrorStatusCode(e.Kind)

	logger.Error().
		Int("http_statuscode", httpStatusCode).
		Str("kind", e.Kind.String()).
		Str("parameter", string(e.Param)).
		Strs("stack", OpStack(e)).
		Err(e).
		Msg("error response sent to client")

	writeResponse(w, logger, httpStatusCode, ErrResponse{
		Detail: rootMessage(e),
		Kind:   e.Kind.String(),
		Param:  string(e.Param),
	})
}

func unauthenticatedErrorResponse(w http.ResponseWriter, logger zerolog.Logger, e *Error) {
	logger.Error().
		Int("http_statuscode", http.StatusUnauthorized).
		Strs("stack", OpStack(e)).
		Err(e).
		Msg("unauthenticated request")

	writeResponse(w, logger, http.StatusUnauthorized, ErrResponse{
		Detail: rootMessage(e),
		Kind:   e.Kind.String(),
		Param:  string(e.Param),
	})
}

func unauthorizedErrorResponse(w http.ResponseWriter, logger zerolog.Logger, e *Error) {
	logger.Error().
		Int("http_statuscode", http.StatusForbidden).
		Str("user", string(e.User)).
		Strs("stack", OpStack(e)).
		Err(e).
		Msg("unauthorized request")

	writeResponse(w, logger, http.StatusForbidden, ErrResponse{
		Detail: rootMessage(e),
		Kind:   e.Kind.String(),
	})
}

func nilErrorResponse(w http.ResponseWriter, logger zerolog.Logger) {
	logger.Error().
		Int("http_statuscode", http.StatusInternalServerError).
		Msg("nil error - no response body sent")

	w.WriteHeader(http.StatusInternalServerError)
}

func unknownErrorResponse(w http.ResponseWriter, logger zerolog.Logger, err error) {
	logger.Error().
		Int("http_statuscode", http.StatusInternalServerError).
		Err(err).
		Msg("unknown error response sent to client")

	writeResponse(w, logger, http.StatusInternalServerError, ErrResponse{
		Detail: err.Error(),
		Kind:   UnknownError.String(),
	})
}

func writeResponse(w http.ResponseWriter, logger zerolog.Logger, code int, body ErrResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.Error().Err(err).Msg("writing error response")
	}
}

// rootMessage returns the message of the innermost error that is not an
// *Error, which is where upstream response bodies end up.
func rootMessage(e *Error) string {
	var err error = e

	for {
		var inner *Error
		if !errors.As(err, &inner) || inner.Err == nil {
			break
		}

		err = inner.Err
	}

	var last *Error
	if errors.As(err, &last) {
		return last.Kind.String()
	}

	return err.Error()
}

// httpErrorStatusCode maps an error Kind to an HTTP Status Code
func httpErrorStatusCode(k Kind) int {
	switch k {
	case Exist:
		return http.StatusConflict
	case NotExist:
		return http.StatusNotFound
	case Invalid, Private, BrokenLink, Validation, InvalidRequest:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
