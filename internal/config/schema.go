package config

// Config holds extractor configuration.
// Loaded from ./config.yaml (or --config) with environment overrides.
type Config struct {
	Provider  ProviderCfg  `mapstructure:"provider" yaml:"provider"`
	Extract   ExtractCfg   `mapstructure:"extract" yaml:"extract"`
	Templates TemplatesCfg `mapstructure:"templates" yaml:"templates"`
	Server    ServerCfg    `mapstructure:"server" yaml:"server"`
}

// ProviderCfg configures the model provider.
type ProviderCfg struct {
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`                 // API key (supports ${ENV_VAR} syntax)
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`               // Optional API base URL override
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // HTTP timeout for the model call
}

// ExtractCfg configures the extraction pipeline.
type ExtractCfg struct {
	Model          string  `mapstructure:"model" yaml:"model"`                     // Model alias ("default" uses the built-in default)
	MaxPages       int     `mapstructure:"max_pages" yaml:"max_pages"`             // Pages rendered per document
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`         // Model temperature
	ValidateOutput bool    `mapstructure:"validate_output" yaml:"validate_output"` // Validate output against $schema templates
}

// TemplatesCfg configures template loading.
type TemplatesCfg struct {
	// Dir overrides the embedded templates. May also contain registry.yaml
	// to extend the keyword registry.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ServerCfg configures the HTTP server for the web UI.
type ServerCfg struct {
	Host       string `mapstructure:"host" yaml:"host"`
	Port       string `mapstructure:"port" yaml:"port"`
	SamplesDir string `mapstructure:"samples_dir" yaml:"samples_dir"` // Demo PDFs listed by the UI
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderCfg{
			APIKey:         "${OPENAI_API_KEY}",
			TimeoutSeconds: 300,
		},
		Extract: ExtractCfg{
			Model:       "default",
			MaxPages:    10,
			Temperature: 0,
		},
		Server: ServerCfg{
			Host:       "127.0.0.1",
			Port:       "8501",
			SamplesDir: "sample",
		},
	}
}
