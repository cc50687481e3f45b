package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorsort/internal/config"
	"github.com/vovakirdan/tui-colorsort/internal/platform/tui"
)

var (
	flagSSHHost string
	flagSSHPort int
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Color Sort SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own level picker and game. Sessions are
independent; the server only tracks who is connected and which level they
are on.

Host key handling:
  - If --host-key (or server.host_key_path) is set, uses that key file
  - A relative path is resolved inside the XDG data directory
  - The key is generated on first start if missing

Examples:
  colorsort serve                        # Listen on the configured port
  colorsort serve --port 2323            # Listen on port 2323
  colorsort serve --host-key ./host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHHost, "host", "", "Listen host (default: from config)")
	serveCmd.Flags().IntVar(&flagSSHPort, "port", 0, "Listen port (default: from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default: from config)")
}

// serverConfig merges the configuration and serve flags.
func serverConfig(cfg config.ServerConfig) (config.ServerConfig, error) {
	if flagSSHHost != "" {
		cfg.Host = flagSSHHost
	}
	if flagSSHPort > 0 {
		cfg.Port = flagSSHPort
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	} else if cfg.HostKeyPath != "" && !filepath.IsAbs(cfg.HostKeyPath) {
		path, err := xdg.DataFile(filepath.Join("colorsort", cfg.HostKeyPath))
		if err != nil {
			return cfg, fmt.Errorf("cannot resolve host key path: %w", err)
		}
		cfg.HostKeyPath = path
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loaded.Config

	logger, err := stderrLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg, err := serverConfig(cfg.Server)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, closer, err := openSource(cfg.Levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Host:        srvCfg.Host,
		Port:        srvCfg.Port,
		HostKeyPath: srvCfg.HostKeyPath,
		IdleTimeout: srvCfg.IdleTimeout,
		MaxSessions: srvCfg.MaxSessions,
		Source:      src,
		Game:        gameOptions(cfg, src, logger),
		Theme:       cfg.Display.Theme,
		TickRate:    cfg.Display.FPS,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Color Sort SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", srvCfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
