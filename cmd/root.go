package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio static site generator",
	Long: `Folio renders a personal portfolio website to plain HTML: home, about,
three blog posts, and a contact page that can embed a WebAssembly form
module for client-side interactivity. The output is a directory of
static documents any web server can host.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env file may hold FOLIO_* overrides; a missing file is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
