package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/nav"
	"github.com/five82/brevity/internal/state"
)

// SourceRemote labels navigations that arrive over HTTP.
const SourceRemote = "remote"

const dispatchTimeout = 5 * time.Second

// Server serves the remote control API.
type Server struct {
	store    *state.Store
	dispatch Dispatcher
	metrics  *Metrics
	logger   *slog.Logger
}

// NewHandler builds the HTTP handler for the remote control API.
func NewHandler(store *state.Store, dispatch Dispatcher, metrics *Metrics, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{store: store, dispatch: dispatch, metrics: metrics, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/location", s.location)
	r.Post("/api/navigate/{direction}", s.navigate)
	r.Post("/api/next", s.simple(Next))
	r.Post("/api/prev", s.simple(Prev))
	r.Post("/api/first", s.simple(First))
	r.Post("/api/last", s.simple(Last))
	r.Post("/api/goto/{deck}/{slide}", s.gotoSlide)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	return r
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return ServeListener(ctx, ln, handler, logger)
}

// ServeListener serves on ln until ctx is done.
func ServeListener(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("remote control listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown remote: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve remote: %w", err)
	}
}

func (s *Server) location(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, locationFrom(s.store.Snapshot()), s.logger)
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request) {
	dir, err := nav.ParseDirection(chi.URLParam(r, "direction"))
	if err != nil {
		s.logger.Debug("remote navigate rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()}, s.logger)
		return
	}
	s.run(w, r, Command{Kind: Navigate, Direction: dir})
}

func (s *Server) simple(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.run(w, r, Command{Kind: kind})
	}
}

func (s *Server) gotoSlide(w http.ResponseWriter, r *http.Request) {
	deck, errDeck := strconv.Atoi(chi.URLParam(r, "deck"))
	slide, errSlide := strconv.Atoi(chi.URLParam(r, "slide"))
	if errDeck != nil || errSlide != nil || deck < 1 || slide < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "deck and slide must be positive integers"}, s.logger)
		return
	}
	s.run(w, r, Command{Kind: Goto, Position: grid.Position{Deck: deck - 1, Slide: slide - 1}})
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, cmd Command) {
	ctx, cancel := context.WithTimeout(r.Context(), dispatchTimeout)
	defer cancel()

	res, err := s.dispatch(ctx, cmd)
	if err != nil {
		s.logger.Warn("remote dispatch failed", "command", cmd.Kind.String(), "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()}, s.logger)
		return
	}
	s.metrics.Observe(SourceRemote, res)
	writeJSON(w, statusFor(res.Outcome), navigateFrom(res), s.logger)
}

func statusFor(o nav.Outcome) int {
	switch o {
	case nav.Rejected:
		return http.StatusConflict
	case nav.InvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encode response failed", "error", err)
	}
}
