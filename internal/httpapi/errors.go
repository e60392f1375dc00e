package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/katalvlaran/randlab/gof"
	"github.com/katalvlaran/randlab/period"
	"github.com/katalvlaran/randlab/rejection"
	"github.com/katalvlaran/randlab/sequence"
)

// errBadRequest marks request-shape problems caught before the core runs.
var errBadRequest = errors.New("bad request")

func badRequestf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errBadRequest)
}

// statusFor maps a handler error onto its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, sequence.ErrInvalidParameter),
		errors.Is(err, sequence.ErrUnsupportedMethod),
		errors.Is(err, period.ErrInvalidParameter),
		errors.Is(err, gof.ErrInvalidParameter),
		errors.Is(err, gof.ErrDegenerateSample),
		errors.Is(err, rejection.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, rejection.ErrDensityContractViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// internalErrorBody is sent when a payload cannot be encoded.
const internalErrorBody = `{"detail":"internal error"}` + "\n"

// writeJSON encodes payload before touching the response, so an encoding
// failure (a non-finite float, say) becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, internalErrorBody)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeError reports err as {"detail": ...}. Internal errors are not echoed.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Detail: msg})
	return status
}
