package groq

import (
	"context"
	"io"
	"net/http"

	"github.com/adrianliechti/speech/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	client openai.Client
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		client: openai.NewClient(cfg.Options()...),
	}, nil
}

// https://console.groq.com/docs/text-to-speech
//
// Posted as is: voice stays in the body when empty and the four fields are
// the only ones sent.
type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`

	ResponseFormat string `json:"response_format"`
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	format := options.Format

	if format == "" {
		format = "mp3"
	}

	body := speechRequest{
		Model: s.model,
		Voice: options.Voice,
		Input: content,

		ResponseFormat: format,
	}

	var resp *http.Response

	if err := s.client.Post(ctx, "audio/speech", body, &resp, option.WithHeader("Accept", "application/octet-stream")); err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: contentType(format),
	}, nil
}

// captureError turns a non-success upstream response into a ProviderError
// carrying the raw body, before the SDK tries to decode it as JSON.
func captureError(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	resp, err := next(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return nil, &provider.ProviderError{
		StatusCode: resp.StatusCode,
		Message:    string(data),
	}
}

func contentType(format string) string {
	switch format {
	case "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	case "flac":
		return "audio/flac"
	case "opus":
		return "audio/opus"
	case "aac":
		return "audio/aac"
	}

	return "application/octet-stream"
}
