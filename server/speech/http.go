package speech

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

func writeJson(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var herr *Error

	if !errors.As(err, &herr) {
		slog.ErrorContext(r.Context(), "speech request failed", "error", err)

		writeJson(w, http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})

		return
	}

	if herr.Code >= 500 {
		slog.WarnContext(r.Context(), "speech request failed", "status", herr.Code, "error", herr.Error())
	}

	writeJson(w, herr.Code, ErrorResponse{
		Error:   herr.Message,
		Details: herr.Details,
	})
}
