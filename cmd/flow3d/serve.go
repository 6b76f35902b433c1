package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/flow3d/internal/metrics"
	"github.com/vovakirdan/flow3d/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flow3D SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level menu and its own
puzzles. Solves are stored per server and recorded under the SSH user name.

Host key handling:
  - If --host-key (or ssh.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.flow3d/host_key

With --metrics (or ssh.metrics_address) an HTTP server also runs, serving
Prometheus metrics at /metrics, a health probe at /healthz and best times
as JSON at /levels and /levels/<id>/scores.

Examples:
  flow3d serve                           # Listen on the configured address
  flow3d serve --ssh :2222               # Listen on port 2222
  flow3d serve --host-key ./my_host_key  # Use specific host key
  flow3d serve --db ./solves.db          # Use specific database
  flow3d serve --metrics :9090           # Also serve metrics over HTTP

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes, 0 disables (overrides config)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "HTTP metrics address host:port (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if flagSSHAddr != "" {
		a.cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		a.cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		a.cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}
	if flagMetricsAddr != "" {
		a.cfg.SSH.MetricsAddress = flagMetricsAddr
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	theme, ok := tui.ThemeByName(a.cfg.Theme)
	if !ok {
		a.logger.Warn("unknown theme, using default", "theme", a.cfg.Theme)
	}
	tui.SetTheme(theme)

	// Open solve storage
	store, err := a.openStore()
	if err != nil {
		a.logger.Warn("could not open solve database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	loader := a.loader()
	if ids, err := loader.ListIDs(); err == nil {
		a.logger.Info("levels loaded", "count", len(ids), "dir", loader.Root)
	}

	server, err := tui.NewSSHServer(a.cfg, loader, store, a.logger.WithPrefix("flow3d-ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	if addr := a.cfg.SSH.MetricsAddress; addr != "" {
		m := metrics.New()
		server.SetRecorder(m)
		httpLogger := a.logger.WithPrefix("flow3d-http")
		handler := metrics.NewHandler(m, store, httpLogger)
		g.Go(func() error {
			return metrics.Serve(ctx, addr, handler, httpLogger)
		})
	}
	g.Go(func() error {
		return server.Serve(ctx)
	})
	return g.Wait()
}
