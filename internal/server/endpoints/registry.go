package endpoints

import (
	"github.com/pradyten/pdf-extractor/internal/api"
)

// Config carries endpoint construction settings.
type Config struct {
	// DefaultModel is what the "default" model alias resolves to.
	DefaultModel string
	// SwaggerSpecPath overrides where /swagger.json is read from.
	SwaggerSpecPath string
}

// All returns every endpoint in registration order. The static endpoint is
// last so API routes take precedence over the catch-all.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&TemplatesEndpoint{},
		&ModelsEndpoint{DefaultModel: cfg.DefaultModel},
		&SamplesEndpoint{},
		&SampleFileEndpoint{},
		&ExtractEndpoint{},
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&StaticEndpoint{},
	}
}
