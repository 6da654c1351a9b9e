package speech

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/adrianliechti/speech/pkg/audio"
	"github.com/adrianliechti/speech/pkg/provider"
)

func (h *Handler) handleSpeech(r *http.Request) (*SpeechResponse, error) {
	body, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	var req *SpeechRequest

	// Unmarshal, unlike a streaming decoder, rejects data after the value
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, errors.New("request body must be a JSON object")
	}

	text, err := parseText(req.Text)

	if err != nil {
		return nil, err
	}

	if trimText(text) == "" {
		return nil, errNoText
	}

	key := h.Credential.Value()

	if key == "" {
		return nil, errMissingCredential(h.Credential.Name())
	}

	synthesizer, err := h.Synthesizer(key)

	if err != nil {
		return nil, err
	}

	voice := h.Voice

	if req.Voice != nil {
		voice = *req.Voice
	}

	options := &provider.SynthesizeOptions{
		Voice:  voice,
		Format: h.Format,
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), text, options)

	if err != nil {
		var perr *provider.ProviderError

		if errors.As(err, &perr) {
			return nil, errUpstream(perr.Message)
		}

		return nil, err
	}

	data, err := audio.EncodeBase64(synthesis.Content)

	if err != nil {
		return nil, err
	}

	slog.DebugContext(r.Context(), "speech synthesized", "voice", voice, "input", len(text), "bytes", len(synthesis.Content))

	return &SpeechResponse{
		Audio: data,
	}, nil
}

// parseText accepts a string. Absent, null, false and 0 count as no text;
// any other non-string value is an invalid request.
func parseText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 {
		return "", nil
	}

	var val any

	if err := json.Unmarshal(raw, &val); err != nil {
		return "", err
	}

	switch v := val.(type) {
	case nil:
		return "", nil

	case string:
		return v, nil

	case bool:
		if !v {
			return "", nil
		}

	case float64:
		if v == 0 {
			return "", nil
		}
	}

	return "", errors.New("text must be a string")
}

// trimText strips surrounding white space including the byte order mark.
func trimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
