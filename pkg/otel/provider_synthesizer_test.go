package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/speech/pkg/otel"
	"github.com/adrianliechti/speech/pkg/provider"

	"github.com/stretchr/testify/require"
)

type mockSynthesizer struct {
	result *provider.Synthesis
	err    error

	input   string
	options *provider.SynthesizeOptions
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	m.input = input
	m.options = options

	return m.result, m.err
}

func TestSynthesizerPassThrough(t *testing.T) {
	mock := &mockSynthesizer{
		result: &provider.Synthesis{Content: []byte("audio")},
	}

	s := otel.NewSynthesizer("groq", "gpt-4o-mini-tts", mock)

	options := &provider.SynthesizeOptions{Voice: "female"}

	result, err := s.Synthesize(context.Background(), "hello", options)
	require.NoError(t, err)

	require.Same(t, mock.result, result)
	require.Same(t, options, mock.options)
	require.Equal(t, "hello", mock.input)
}

func TestSynthesizerError(t *testing.T) {
	upstream := &provider.ProviderError{StatusCode: 429, Message: "rate limited"}

	s := otel.NewSynthesizer("groq", "gpt-4o-mini-tts", &mockSynthesizer{err: upstream})

	result, err := s.Synthesize(context.Background(), "hello", nil)
	require.Nil(t, result)

	var perr *provider.ProviderError
	require.True(t, errors.As(err, &perr))
	require.Same(t, upstream, perr)
}
