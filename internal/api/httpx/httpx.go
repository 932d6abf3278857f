package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/services"
)

type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

// StatusFor maps a service error to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrUnknownUser):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteErr writes err as {message}. Internal errors are logged under op and
// answered with fallback so driver details never reach the client.
func WriteErr(w http.ResponseWriter, r *http.Request, op string, err error, fallback string) {
	status := StatusFor(err)
	var svcErr *services.Error
	if status == http.StatusInternalServerError || !errors.As(err, &svcErr) {
		slog.ErrorContext(r.Context(), op, "err", err)
		WriteMessage(w, http.StatusInternalServerError, fallback)
		return
	}
	slog.DebugContext(r.Context(), op, "status", status, "err", err)
	WriteMessage(w, status, svcErr.Message)
}

var errTrailingData = errors.New("unexpected data after JSON body")

// Decode reads a single JSON value into v. An empty body leaves v untouched;
// anything but whitespace after the value is rejected.
func Decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
