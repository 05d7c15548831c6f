package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amorgan/folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure your site, generates a .folio.yml file, and scaffolds a starter profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
