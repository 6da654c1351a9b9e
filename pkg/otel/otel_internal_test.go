package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupUnwindsOnFailure(t *testing.T) {
	var stopped []string

	step := func(name string) func(context.Context) (shutdownFunc, error) {
		return func(context.Context) (shutdownFunc, error) {
			return func(context.Context) error {
				stopped = append(stopped, name)
				return nil
			}, nil
		}
	}

	failure := errors.New("exporter unavailable")

	shutdown, err := setup(context.Background(),
		step("tracer"),
		step("meter"),
		func(context.Context) (shutdownFunc, error) {
			return nil, failure
		},
	)

	require.Nil(t, shutdown)
	require.ErrorIs(t, err, failure)
	require.Equal(t, []string{"meter", "tracer"}, stopped)
}

func TestSetupShutdown(t *testing.T) {
	var stopped []string

	step := func(name string, err error) func(context.Context) (shutdownFunc, error) {
		return func(context.Context) (shutdownFunc, error) {
			return func(context.Context) error {
				stopped = append(stopped, name)
				return err
			}, nil
		}
	}

	failure := errors.New("flush failed")

	shutdown, err := setup(context.Background(), step("tracer", nil), step("meter", failure), step("logger", nil))
	require.NoError(t, err)
	require.Empty(t, stopped)

	require.ErrorIs(t, shutdown(context.Background()), failure)
	require.Equal(t, []string{"logger", "meter", "tracer"}, stopped)
}
