package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amorgan/folio/internal/bundle"
	"github.com/amorgan/folio/internal/progress"
	"github.com/amorgan/folio/internal/site"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the static site",
	Long: `Renders every page of the site into the output directory and copies the
assets alongside them. With --hybrid the contact page loads the compiled
WebAssembly form module; with --skip-contact the contact page is left out.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("skip-contact", false, "generate the site without a contact page")
	generateCmd.Flags().Bool("hybrid", false, "embed the compiled WASM contact form on the contact page")
	generateCmd.Flags().String("output", "", "override the output directory")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	skipContact, _ := cmd.Flags().GetBool("skip-contact")
	hybrid, _ := cmd.Flags().GetBool("hybrid")

	gen := site.NewGenerator(cfg, site.Options{SkipContact: skipContact, Hybrid: hybrid})
	gen.Reporter = progress.NewReporter()

	res, err := gen.Generate(cmd.Context())
	if err != nil {
		if errors.Is(err, bundle.ErrScriptNotFound) || errors.Is(err, bundle.ErrBinaryNotFound) {
			return fmt.Errorf("%w\nBuild the form module into %s first:\n"+
				"  GOOS=js GOARCH=wasm go build -o %s/contactform-dev.wasm ./web/contactform\n"+
				"  cat \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" web/contactform/loader.js > %s/contactform-dev.js",
				err, cfg.BundleDir, cfg.BundleDir, cfg.BundleDir)
		}
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages in %s)\n", res.Dir, res.Pages, res.Elapsed.Round(time.Millisecond))
	return nil
}
