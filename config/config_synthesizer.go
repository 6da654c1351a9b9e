package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/speech/pkg/otel"
	"github.com/adrianliechti/speech/pkg/provider"
	"github.com/adrianliechti/speech/pkg/provider/groq"
)

const (
	DefaultVoice  = "female"
	DefaultFormat = "mp3"
)

func (cfg *Config) registerSynthesizer(s *synthesizerConfig, proxy *proxyConfig) error {
	if s == nil {
		s = new(synthesizerConfig)
	}

	switch strings.ToLower(s.Type) {
	case "", "groq", "openai", "openai-compatible":
	default:
		return errors.New("invalid synthesizer type: " + s.Type)
	}

	transport, err := proxy.proxyTransport()

	if err != nil {
		return err
	}

	if s.Voice != "" {
		cfg.Voice = s.Voice
	}

	if s.Format != "" {
		cfg.Format = s.Format
	}

	cfg.synthesizer = *s
	cfg.client = newClient(transport, s.Timeout)

	return nil
}

// Synthesizer returns a synthesizer authenticated with token.
func (cfg *Config) Synthesizer(token string) (provider.Synthesizer, error) {
	if token == "" {
		return nil, errors.New("missing token")
	}

	options := []groq.Option{
		groq.WithToken(token),
	}

	if cfg.client != nil {
		options = append(options, groq.WithClient(cfg.client))
	}

	model := cfg.synthesizer.Model

	if model == "" {
		model = groq.DefaultModel
	}

	s, err := groq.NewSynthesizer(cfg.synthesizer.URL, model, options...)

	if err != nil {
		return nil, err
	}

	return otel.NewSynthesizer("groq", model, s), nil
}
