package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/handler"
	"go.uber.org/zap"
)

type Server struct {
	server *http.Server
	log    *zap.SugaredLogger
}

func NewServer(h *handler.Handler, addr, jwtSecret string, log *zap.SugaredLogger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, jwtSecret)

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
