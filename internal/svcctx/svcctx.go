// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/pradyten/pdf-extractor/internal/config"
	"github.com/pradyten/pdf-extractor/internal/extract"
	"github.com/pradyten/pdf-extractor/internal/registry"
)

// Services holds the core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Pipeline   *extract.Pipeline
	Registry   *registry.Registry
	ConfigMgr  *config.Manager
	Logger     *slog.Logger
	SamplesDir string
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// From returns the Services from context, or nil.
func From(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// PipelineFrom returns the extraction pipeline from context, or nil.
func PipelineFrom(ctx context.Context) *extract.Pipeline {
	if s := From(ctx); s != nil {
		return s.Pipeline
	}
	return nil
}

// RegistryFrom returns the template registry from context, or nil.
func RegistryFrom(ctx context.Context) *registry.Registry {
	if s := From(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// LoggerFrom returns the logger from context, or slog.Default().
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := From(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// SamplesDirFrom returns the samples directory from context, or "".
func SamplesDirFrom(ctx context.Context) string {
	if s := From(ctx); s != nil {
		return s.SamplesDir
	}
	return ""
}
