package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amorgan/folio/internal/config"
	"github.com/amorgan/folio/internal/server"
	"github.com/amorgan/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site locally",
	Long: `Generates the site and serves it over HTTP for local preview. With
--watch the site is regenerated whenever an input changes and connected
browsers reload automatically.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the local server (defaults to serve.port from config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "regenerate on change and live-reload browsers")
	serveCmd.Flags().Bool("skip-contact", false, "generate the site without a contact page")
	serveCmd.Flags().Bool("hybrid", false, "embed the compiled WASM contact form on the contact page")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Serve.Port
	}
	open, _ := cmd.Flags().GetBool("open")
	watch, _ := cmd.Flags().GetBool("watch")
	skipContact, _ := cmd.Flags().GetBool("skip-contact")
	hybrid, _ := cmd.Flags().GetBool("hybrid")

	gen := site.NewGenerator(cfg, site.Options{SkipContact: skipContact, Hybrid: hybrid})

	// Build once up front so there is always something to serve.
	if _, err := gen.Generate(cmd.Context()); err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	srv := server.New(server.Config{
		Dir:        cfg.OutputDir,
		Port:       port,
		LiveReload: watch,
	}, slog.Default())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		srv.Shutdown(context.Background())
	}()

	if watch {
		go func() {
			err := server.Watch(ctx, watchDirs(cfg), func() {
				if _, err := gen.Generate(ctx); err != nil {
					slog.Error("rebuild failed", "error", err)
					return
				}
				srv.Reload()
			})
			if err != nil {
				slog.Error("watcher stopped", "error", err)
			}
		}()
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	if open || cfg.Serve.Open {
		go server.OpenBrowser(url)
	}

	fmt.Printf("Serving site at %s — press Ctrl+C to stop\n", url)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

// watchDirs lists the existing input directories that should trigger a
// rebuild.
func watchDirs(cfg *config.Config) []string {
	candidates := []string{cfg.AssetsDir, cfg.BundleDir, filepath.Dir(cfg.ProfilePath)}

	var dirs []string
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
