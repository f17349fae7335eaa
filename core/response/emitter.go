package response

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Emitter sends a response to the client.
type Emitter interface {
	// Emit renders resp to w. A rendering error is converted into an
	// error response unless the status line has already been sent.
	Emit(w http.ResponseWriter, r *http.Request, resp Response) error
}

// ErrNilResponse is reported when a nil Response is emitted.
var ErrNilResponse = errors.New("nil response")

// statusCode is implemented by errors that know their HTTP status.
type statusCode interface {
	StatusCode() int
}

// EmitterOption configures the default emitter.
type EmitterOption func(*emitter)

// WithEmitterLogger sets the logger used to report rendering failures.
func WithEmitterLogger(logger *slog.Logger) EmitterOption {
	return func(e *emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type emitter struct {
	logger *slog.Logger
}

// NewEmitter returns the default emitter.
func NewEmitter(opts ...EmitterOption) Emitter {
	e := &emitter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *emitter) Emit(w http.ResponseWriter, r *http.Request, resp Response) error {
	ww := newResponseWriter(w)

	err := ErrNilResponse
	if resp != nil {
		err = resp(ww, r)
	}
	if err == nil {
		return nil
	}

	if ww.Written() {
		e.logger.ErrorContext(r.Context(), "response failed after headers were sent",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", ww.Status()),
		)
		return err
	}

	WriteError(ww, err)
	return err
}

// WriteError writes err as a JSON error body of the form
// {"error": {"code": ..., "message": ...}}. Only the HTTPError found in the
// chain is disclosed, never the text of wrapping errors. Other errors that
// implement StatusCode keep their status with a generic message; anything
// else becomes a 500.
func WriteError(w http.ResponseWriter, err error) {
	httpErr := toHTTPError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpErr.Status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: httpErr})
}

type errorBody struct {
	Error HTTPError `json:"error"`
}

func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status == 0 {
			httpErr.Status = http.StatusInternalServerError
		}
		if httpErr.Message == "" {
			httpErr.Message = http.StatusText(httpErr.Status)
		}
		return httpErr
	}

	var sc statusCode
	if errors.As(err, &sc) && http.StatusText(sc.StatusCode()) != "" {
		status := sc.StatusCode()
		return HTTPError{
			Status:  status,
			Code:    strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_"),
			Message: http.StatusText(status),
		}
	}

	return ErrInternalServerError
}
