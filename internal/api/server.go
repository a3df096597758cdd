package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/flowmotion/internal/service"
)

type Server struct {
	mx           *chi.Mux
	relayService service.RelayServiceI
	jwtService   JWTServiceI
}

type ServicesList struct {
	RelayService service.RelayServiceI
	JwtService   JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil || servicesOptions.RelayService == nil || servicesOptions.JwtService == nil {
		log.Fatal("on bridge server provided nil services")
	}
	s := &Server{
		mx:           chi.NewMux(),
		relayService: servicesOptions.RelayService,
		jwtService:   servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/clients", s.RegisterContext)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/clients", s.ListContexts)
			r.Get("/clients/me", s.CurrentContext)
			r.Delete("/clients/me", s.UnregisterContext)
			r.Post("/messages", s.PostMessage)
			r.Get("/notifications", s.ListNotifications)
			r.Post("/notifications/click", s.ClickNotification)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves the bridge on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("bridge listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
