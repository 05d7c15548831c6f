// Package site builds the static portfolio site: it renders every page,
// copies the shared assets, and, in hybrid mode, ships the browser form
// module alongside them.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/amorgan/folio/internal/blog"
	"github.com/amorgan/folio/internal/bundle"
	"github.com/amorgan/folio/internal/config"
	"github.com/amorgan/folio/internal/profile"
	"github.com/amorgan/folio/internal/progress"
	"github.com/amorgan/folio/internal/render"
)

// Options control a single site build.
type Options struct {
	// SkipContact leaves the contact page out entirely.
	SkipContact bool
	// Hybrid generates the contact page around the compiled form module
	// instead of the display-only version.
	Hybrid bool
}

// Result summarizes a completed build.
type Result struct {
	BuildID string
	Pages   int
	Dir     string
	Elapsed time.Duration
}

// Generator renders the site into the configured output directory.
// Reporter and Logger may be left nil.
type Generator struct {
	Config   *config.Config
	Options  Options
	Reporter progress.Reporter
	Logger   *slog.Logger
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config, opts Options) *Generator {
	return &Generator{Config: cfg, Options: opts}
}

// page is one document of the build plan.
type page struct {
	path   string // output path relative to the output dir
	label  string
	render func() (string, error)
}

// Generate builds the full site. The output directory is cleaned first, so
// a successful build never contains artifacts of a previous one.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	buildID := uuid.NewString()
	cfg := g.Config

	log := g.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("build_id", buildID)

	rep := g.Reporter
	if rep == nil {
		rep = progress.Noop()
	}

	log.Info("generating site",
		"output_dir", cfg.OutputDir,
		"hybrid", g.Options.Hybrid,
		"skip_contact", g.Options.SkipContact)

	// Load the site data up front so a broken input fails the build before
	// the output directory is touched.
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		log.Warn("profile unavailable, rendering placeholder", "error", err)
	}

	posts, err := blog.Posts()
	if err != nil {
		return nil, fmt.Errorf("loading blog posts: %w", err)
	}

	var formBundle bundle.Bundle
	wantForm := g.Options.Hybrid && !g.Options.SkipContact
	if wantForm {
		formBundle, err = bundle.Locate(cfg.BundleDir)
		if err != nil {
			return nil, err
		}
	}

	r := &render.Renderer{Site: render.Site{
		Title:       cfg.Title,
		Description: cfg.Description,
		BaseURL:     cfg.BaseURL,
	}}

	pages := []page{
		{path: "index.html", label: "Rendering home page", render: r.Home},
		{
			path:   filepath.Join("about", "index.html"),
			label:  "Rendering about page",
			render: func() (string, error) { return r.About(prof) },
		},
	}

	switch {
	case g.Options.SkipContact:
		log.Info("skipping contact page")
	case g.Options.Hybrid:
		scriptPath := "/assets/" + filepath.Base(formBundle.Script)
		pages = append(pages, page{
			path:   filepath.Join("contact", "index.html"),
			label:  "Rendering contact page (hybrid)",
			render: func() (string, error) { return r.ContactHybrid(prof, scriptPath) },
		})
	default:
		pages = append(pages, page{
			path:   filepath.Join("contact", "index.html"),
			label:  "Rendering contact page",
			render: func() (string, error) { return r.ContactStatic(prof) },
		})
	}

	for _, post := range posts {
		pages = append(pages, page{
			path:   filepath.Join("blog", strconv.Itoa(post.ID), "index.html"),
			label:  fmt.Sprintf("Rendering blog post %d", post.ID),
			render: func() (string, error) { return r.BlogPost(post) },
		})
	}

	// Start from a clean output directory.
	if err := cleanDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	rep.Start(len(pages))
	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rep.Update(i+1, p.label)
		doc, err := p.render()
		if err != nil {
			return nil, err
		}

		outPath := filepath.Join(cfg.OutputDir, p.path)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		log.Debug("wrote page", "path", outPath)
	}
	rep.Finish()

	if err := g.copyAssets(log); err != nil {
		return nil, err
	}

	if wantForm {
		if err := copyBundle(formBundle, filepath.Join(cfg.OutputDir, "assets")); err != nil {
			return nil, err
		}
		log.Info("copied form bundle",
			"script", filepath.Base(formBundle.Script),
			"binary", filepath.Base(formBundle.Binary))
	}

	elapsed := time.Since(start)
	log.Info("site generated", "pages", len(pages), "dir", cfg.OutputDir, "elapsed", elapsed)

	return &Result{
		BuildID: buildID,
		Pages:   len(pages),
		Dir:     cfg.OutputDir,
		Elapsed: elapsed,
	}, nil
}

// copyAssets mirrors the assets directory into the output. A missing assets
// directory is logged and skipped, not an error.
func (g *Generator) copyAssets(log *slog.Logger) error {
	src := g.Config.AssetsDir
	if src == "" {
		return nil
	}

	if _, err := os.Stat(src); os.IsNotExist(err) {
		log.Warn("assets directory missing, skipping copy", "dir", src)
		return nil
	} else if err != nil {
		return fmt.Errorf("accessing assets dir %s: %w", src, err)
	}

	if err := copyDir(src, filepath.Join(g.Config.OutputDir, "assets")); err != nil {
		return fmt.Errorf("copying assets: %w", err)
	}
	return nil
}

// copyBundle places the form module artifacts next to the other assets so
// the contact page can load them from /assets/.
func copyBundle(b bundle.Bundle, assetsDir string) error {
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", assetsDir, err)
	}
	for _, src := range []string{b.Script, b.Binary} {
		if err := copyFile(src, filepath.Join(assetsDir, filepath.Base(src))); err != nil {
			return fmt.Errorf("copying form bundle: %w", err)
		}
	}
	return nil
}

// cleanDir removes dir and recreates it empty. It refuses the working
// directory and the filesystem root.
func cleanDir(dir string) error {
	if dir == "" || dir == "." || dir == string(filepath.Separator) {
		return fmt.Errorf("refusing to clean output dir %q", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("cleaning output dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	return nil
}
