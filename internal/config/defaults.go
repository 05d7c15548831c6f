package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:       "My Portfolio",
		Description: "Welcome to my personal website",
		ProfilePath: "assets/data/profile.json",
		AssetsDir:   "assets",
		BundleDir:   "web/dist",
		OutputDir:   "static_output",
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}
