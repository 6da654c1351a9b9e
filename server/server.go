package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/speech/config"
	"github.com/adrianliechti/speech/server/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config
	http.Handler

	speech *speech.Handler
}

func New(cfg *config.Config) (*Server, error) {
	h, err := speech.New(cfg)

	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	s := &Server{
		Config:  cfg,
		Handler: otelhttp.NewHandler(r, "speech"),

		speech: h,
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	if len(cfg.Origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Origins,
			AllowedMethods: []string{
				http.MethodPost,
			},
			AllowedHeaders: []string{"*"},
		}))
	}

	r.Get("/healthz", s.handleHealth)

	s.speech.Attach(r)

	return s, nil
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Address,
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		slog.Info("server listening", "address", s.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err

	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
