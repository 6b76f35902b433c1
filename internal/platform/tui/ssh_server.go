package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flow3d/internal/config"
	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/storage"
)

// defaultHostKey is used when the config leaves ssh.host_key empty.
const defaultHostKey = "~/.flow3d/host_key"

// SSHServer wraps a Wish SSH server that serves Flow3D sessions.
type SSHServer struct {
	config   config.SSHConfig
	server   *ssh.Server
	loader   *levels.Loader
	store    *storage.Store
	logger   *log.Logger
	recorder Recorder
}

// NewSSHServer creates a new SSH server. The store may be nil, in which
// case solves are not recorded. The caller keeps ownership of the store.
func NewSSHServer(cfg config.Config, loader *levels.Loader, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if loader == nil {
		return nil, errors.New("ssh server needs a level loader")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	srv := &SSHServer{
		config:   cfg.SSH,
		loader:   loader,
		store:    store,
		logger:   logger,
		recorder: nopRecorder{},
	}

	// Resolve host key path
	hostKeyPath := cfg.SSH.HostKey
	if hostKeyPath == "" {
		hostKeyPath = defaultHostKey
	}
	hostKeyPath = config.ExpandHome(hostKeyPath)

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if timeout := cfg.SSH.IdleTimeout(); timeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(timeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// SetRecorder makes every session report gameplay events to r.
// Call it before Serve.
func (s *SSHServer) SetRecorder(r Recorder) {
	if r != nil {
		s.recorder = r
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
// Levels are loaded per session so new files show up without a restart.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	lvls, err := s.loader.LoadAll()
	if err != nil {
		s.logger.Error("cannot load levels", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	model := NewSessionModel(lvls, s.store, sshSession.User(),
		s.logger.With("user", sshSession.User()), pty.Window.Width, pty.Window.Height).
		WithRecorder(s.recorder)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		s.recorder.SessionStarted()
		next(sshSession)
		elapsed := time.Since(start)
		s.recorder.SessionEnded(elapsed)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", elapsed.Round(time.Second),
		)
	}
}

// Serve runs the server until ctx is done, then shuts it down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("server error", "error", err)
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
