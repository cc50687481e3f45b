package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-colorsort/internal/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels"
	"github.com/vovakirdan/tui-colorsort/internal/logging"
	"github.com/vovakirdan/tui-colorsort/internal/sessions"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Host and Port to listen on.
	Host string
	Port int

	// HostKeyPath is the path to the host key file.
	// It is generated on first start if missing.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent players (0 = no limit).
	MaxSessions int

	Source   levels.Source
	Game     colorsort.Options
	Theme    string
	TickRate int
	Logger   *log.Logger
}

// SSHServer wraps a Wish SSH server that serves one game per session.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	registry *sessions.Registry
	logger   *log.Logger
}

type sessionKey struct{}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Source == nil {
		cfg.Source = levels.EmbeddedSource{}
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if _, err := NewTheme(cfg.Theme, nil); err != nil {
		return nil, err
	}
	if cfg.HostKeyPath == "" {
		return nil, errors.New("ssh: host key path is required")
	}

	srv := &SSHServer{
		config:   cfg,
		registry: sessions.NewRegistry(cfg.MaxSessions),
		logger:   cfg.Logger,
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: logging, session limit, then the game.
	opts := []ssh.Option{
		wish.WithAddress(srv.Addr()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "colorsort needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	player, _ := sshSession.Context().Value(sessionKey{}).(*sessions.Session)

	theme, err := NewTheme(s.config.Theme, bubbletea.MakeRenderer(sshSession))
	if err != nil {
		theme = DefaultTheme()
	}

	gopts := s.config.Game
	gopts.Logger = s.logger.With("user", sshSession.User())
	if player != nil {
		gopts.OnLevel = func(l levels.Level) {
			player.SetLevel(l.ID)
		}
	}

	app := NewApp(AppOptions{
		Source: s.config.Source,
		Game:   gopts,
		Model: ModelOptions{
			Theme:  theme,
			Logger: gopts.Logger,
		},
		Config: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
		},
	})
	if player != nil {
		app = app.WithDone(player.Done())
	}

	return app, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionMiddleware registers each connection and enforces MaxSessions.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		player, err := s.registry.Open(sshSession.User(), sshSession.RemoteAddr().String())
		if errors.Is(err, sessions.ErrFull) {
			s.logger.Warn("rejecting session", "user", sshSession.User(), "err", err)
			wish.Fatalln(sshSession, "Server is full, try again later.")
			return
		}
		defer s.registry.Unregister(player.ID())

		sshSession.Context().SetValue(sessionKey{}, player)
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.registry.Count(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT/SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.Addr())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	}

	s.logger.Info("shutting down...", "active", s.registry.Count())
	return s.Shutdown()
}

// Shutdown asks every player session to end, then stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.registry.CloseAll()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Sessions returns the active player sessions.
func (s *SSHServer) Sessions() []sessions.Info {
	return s.registry.List()
}
