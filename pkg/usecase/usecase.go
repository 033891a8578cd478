// Package usecase orchestrates the engine services into end-to-end
// operations: generating a risk register from requirements and exporting
// a stored register to files.
package usecase

import (
	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/service/classifier"
	"github.com/chent01/riskreg/pkg/service/enhancer"
	"github.com/chent01/riskreg/pkg/service/export"
)

type UseCases struct {
	repo     interfaces.Repository
	source   interfaces.HazardSource
	exporter *export.Exporter

	Register *RegisterUseCase
	Export   *ExportUseCase
}

type Option func(*UseCases)

// WithHazardSource installs the hazard oracle. Without one, every
// generation run uses heuristic identification.
func WithHazardSource(source interfaces.HazardSource) Option {
	return func(uc *UseCases) {
		uc.source = source
	}
}

// WithExporter overrides the default exporter, e.g. to include item
// metadata in JSON exports.
func WithExporter(exporter *export.Exporter) Option {
	return func(uc *UseCases) {
		uc.exporter = exporter
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.exporter == nil {
		uc.exporter = export.New()
	}

	uc.Register = NewRegisterUseCase(repo, uc.source, classifier.New(), enhancer.New())
	uc.Export = NewExportUseCase(repo, uc.exporter)

	return uc
}
