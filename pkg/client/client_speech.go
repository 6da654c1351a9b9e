package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type SpeechService struct {
	Options []RequestOption
}

func NewSpeechService(opts ...RequestOption) SpeechService {
	return SpeechService{
		Options: opts,
	}
}

type SpeechRequest struct {
	Text string `json:"text"`

	Voice *string `json:"voice,omitempty"`
}

type Speech struct {
	Content     []byte
	ContentType string
}

// Error is returned for any non-200 answer of the gateway.
type Error struct {
	StatusCode int

	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Details)
	}

	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func (r *SpeechService) New(ctx context.Context, input SpeechRequest, opts ...RequestOption) (*Speech, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.URL, "/")+"/", bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var result struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Error == "" {
			return nil, &Error{StatusCode: resp.StatusCode, Message: resp.Status}
		}

		return nil, &Error{
			StatusCode: resp.StatusCode,

			Message: result.Error,
			Details: result.Details,
		}
	}

	var result struct {
		Audio string `json:"audio"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(result.Audio)

	if err != nil {
		return nil, err
	}

	return &Speech{
		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}
