package speech

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adrianliechti/speech/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("missing config")
	}

	if cfg.Credential == nil {
		return nil, errors.New("missing credential")
	}

	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	// every method is routed here, the handler answers non-POST itself
	r.HandleFunc("/", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			writeError(w, r, fmt.Errorf("%v", rec))
		}
	}()

	if r.Method != http.MethodPost {
		writeError(w, r, errMethodNotAllowed)
		return
	}

	result, err := h.handleSpeech(r)

	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJson(w, http.StatusOK, result)
}
