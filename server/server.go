package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/postmcp/logger"
)

type Server struct {
	StartTime time.Time
	Svr       *http.Server
	log       *logger.Logger
	shutdown  time.Duration
}

func NewServer(cfg *Conf, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		StartTime: time.Now().UTC(),
		log:       log,
		shutdown:  cfg.TimeoutShutdown,
		Svr: &http.Server{
			Handler:      handler,
			Addr:         cfg.Addr,
			ReadTimeout:  cfg.TimeoutRead,
			WriteTimeout: cfg.TimeoutWrite,
			IdleTimeout:  cfg.TimeoutIdle,
		},
	}
}

func secondsToTimeStr(seconds float64) string {
	duration := time.Duration(int64(seconds)) * time.Second
	timeValue := time.Time{}.Add(duration)
	return timeValue.Format("15:04:05")
}

// returns the current run time of the server
// as a HH:MM:SS formatted string.
func (s *Server) RunTime() string {
	return secondsToTimeStr(time.Since(s.StartTime).Seconds())
}

// forcibly shuts down server and returns total run time.
func (s *Server) Shutdown() (string, error) {
	if err := s.Svr.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return "0", fmt.Errorf("server shutdown failed: %w", err)
	}
	return s.RunTime(), nil
}

// Run serves until ctx is cancelled or the process is interrupted, then
// drains in-flight requests within the shutdown grace period.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		s.log.Info("starting server...", "addr", s.Svr.Addr)
		if err := s.Svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	if err := s.Svr.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("shutdown timed out. forcing exit.", "error", err)
		if _, err := s.Shutdown(); err != nil {
			return err
		}
	}
	s.log.Info(fmt.Sprintf("server run time: %s", s.RunTime()))
	return nil
}
