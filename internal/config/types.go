package config

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title       string      `yaml:"title" koanf:"title"`
	Description string      `yaml:"description" koanf:"description"`
	BaseURL     string      `yaml:"base_url" koanf:"base_url"`
	ProfilePath string      `yaml:"profile_path" koanf:"profile_path"`
	AssetsDir   string      `yaml:"assets_dir" koanf:"assets_dir"`
	BundleDir   string      `yaml:"bundle_dir" koanf:"bundle_dir"`
	OutputDir   string      `yaml:"output_dir" koanf:"output_dir"`
	Serve       ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port int  `yaml:"port" koanf:"port"`
	Open bool `yaml:"open" koanf:"open"`
}
