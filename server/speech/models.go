package speech

import (
	"encoding/json"
)

type SpeechRequest struct {
	Text json.RawMessage `json:"text"`

	// nil selects the configured default voice
	Voice *string `json:"voice"`
}

type SpeechResponse struct {
	Audio string `json:"audio"`
}

type ErrorResponse struct {
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}
