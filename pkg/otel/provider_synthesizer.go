package otel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/adrianliechti/speech/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Synthesizer interface {
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer

	requests metric.Int64Counter
	duration metric.Float64Histogram
	size     metric.Int64Histogram
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	meter := otel.Meter(instrumentationName)

	requests, _ := meter.Int64Counter("speech.synthesize.requests",
		metric.WithDescription("Number of synthesize calls to the upstream provider"),
	)

	duration, _ := meter.Float64Histogram("speech.synthesize.duration",
		metric.WithDescription("Duration of synthesize calls"),
		metric.WithUnit("s"),
	)

	size, _ := meter.Int64Histogram("speech.synthesize.size",
		metric.WithDescription("Size of synthesized audio"),
		metric.WithUnit("By"),
	)

	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,

		requests: requests,
		duration: duration,
		size:     size,
	}
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.model)
	defer span.End()

	started := time.Now()

	result, err := p.synthesizer.Synthesize(ctx, content, options)

	attrs := []KeyValue{
		String("gen_ai.system", p.provider),
		String("gen_ai.request.model", p.model),
	}

	if options != nil && options.Voice != "" {
		span.SetAttributes(String("speech.voice", options.Voice))
	}

	span.SetAttributes(attrs...)
	span.SetAttributes(Int("speech.input.length", len(content)))

	if err != nil {
		var perr *provider.ProviderError

		if errors.As(err, &perr) {
			attrs = append(attrs, Int("http.response.status_code", perr.StatusCode))
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		attrs = append(attrs, String("outcome", "error"))
	} else {
		attrs = append(attrs, String("outcome", "success"))

		span.SetAttributes(Int("speech.output.size", len(result.Content)))
		p.size.Record(ctx, int64(len(result.Content)), metric.WithAttributes(attrs...))
	}

	p.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.duration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(attrs...))

	if EnableDebug {
		slog.DebugContext(ctx, "synthesize", "provider", p.provider, "model", p.model, "duration", time.Since(started), "error", err)
	}

	return result, err
}
