package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/amorgan/folio/internal/profile"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It saves the config to .folio.yml and scaffolds a
// starter profile when none exists yet.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	// 2. Site description.
	descriptionPrompt := promptui.Prompt{
		Label:   "Site description",
		Default: cfg.Description,
	}
	description, err := descriptionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site description: %w", err)
	}

	// 3. Author details for the starter profile.
	namePrompt := promptui.Prompt{
		Label:   "Your name",
		Default: title,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author name: %w", err)
	}

	emailPrompt := promptui.Prompt{
		Label: "Contact email",
		Validate: func(s string) error {
			if !strings.Contains(s, "@") {
				return fmt.Errorf("enter a valid email address")
			}
			return nil
		},
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact email: %w", err)
	}

	githubPrompt := promptui.Prompt{
		Label: "GitHub username (leave blank to skip)",
	}
	github, err := githubPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("github username: %w", err)
	}

	websitePrompt := promptui.Prompt{
		Label: "Personal website URL (leave blank to skip)",
	}
	website, err := websitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("website url: %w", err)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg.Title = title
	cfg.Description = description
	cfg.OutputDir = outputDir

	// Scaffold a starter profile unless one already exists.
	if _, err := os.Stat(cfg.ProfilePath); os.IsNotExist(err) {
		if err := writeStarterProfile(cfg.ProfilePath, name, email, github, website); err != nil {
			return nil, err
		}
		fmt.Printf("\nStarter profile written to %s\n", cfg.ProfilePath)
	} else if err == nil {
		fmt.Printf("\nKeeping existing profile at %s\n", cfg.ProfilePath)
	} else {
		return nil, fmt.Errorf("accessing profile %s: %w", cfg.ProfilePath, err)
	}

	// Save to .folio.yml.
	configPath := ".folio.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	return cfg, nil
}

// writeStarterProfile writes a minimal profile the about page can render
// right away. The author is expected to flesh it out by hand.
func writeStarterProfile(path, name, email, github, website string) error {
	p := &profile.Profile{
		Name:      name,
		Title:     "Software Engineer",
		Location:  "Somewhere, Earth",
		Bio:       "Tell visitors about yourself here.",
		Skills:    []string{"Go", "WebAssembly"},
		Interests: []string{"Open source"},
		Contact: profile.Contact{
			Email:   email,
			Website: website,
			GitHub:  github,
		},
		Updated: time.Now().Format("2006-01-02"),
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling starter profile: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating profile directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing starter profile %s: %w", path, err)
	}
	return nil
}
