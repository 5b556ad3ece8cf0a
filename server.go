package webseo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/webseo/internal/log"
)

// RunsPath is where the preview server exposes the run history.
const RunsPath = "/_webseo/runs"

// Server is a local preview server for the processed web build.
type Server struct {
	Echo *echo.Echo

	dir    string
	store  *Store
	logger zerolog.Logger
}

// NewServer serves the files under dir. When store is non-nil the run
// history is available at RunsPath.
func NewServer(dir string, store *Store) *Server {
	s := &Server{
		Echo:   echo.New(),
		dir:    dir,
		store:  store,
		logger: log.WithComponent("server"),
	}
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	if s.store != nil {
		s.Echo.GET(RunsPath, s.handleRuns)
	}
}

func (s *Server) handleRuns(c echo.Context) error {
	runs, err := s.store.ListRuns(50)
	if err != nil {
		s.logger.Error().Err(err).Msg("list runs")
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load runs")
	}
	return Render(c, RunsPage(runs))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Str("dir", s.dir).Msg("preview server listening")
		if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Echo.Shutdown(shutdownCtx)
}
