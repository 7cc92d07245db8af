package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"chosenoffset.com/raycaster/pkg/logger"
)

// Server serves the feed over HTTP.
type Server struct {
	hub *Hub
	srv *http.Server
}

// NewServer creates a server for hub listening on addr (e.g. ":8080").
func NewServer(addr string, hub *Hub) *Server {
	return &Server{
		hub: hub,
		srv: &http.Server{
			Addr:    addr,
			Handler: NewMux(hub),
		},
	}
}

// NewMux registers the feed routes: /ws for frames and /health for probes.
func NewMux(hub *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handleWS(hub))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "ok",
			"subscribers": hub.SubscriberCount(),
		}); err != nil {
			logger.Log.WithError(err).Warn("failed to write health response")
		}
	})
	return mux
}

// Run blocks serving requests until Shutdown is called.
func (s *Server) Run() error {
	logger.Log.WithField("addr", s.srv.Addr).Info("scene feed listening")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown disconnects subscribers and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.srv.Shutdown(ctx)
}
