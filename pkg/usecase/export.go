package usecase

import (
	"context"
	"io"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/service/export"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

// Default file names written by WriteAll
const (
	CSVFileName    = "risk_register.csv"
	JSONFileName   = "risk_register.json"
	ReportFileName = "risk_report.md"
)

// ExportUseCase writes stored registers out as CSV, JSON, and a narrative
// Markdown report.
type ExportUseCase struct {
	repo     interfaces.Repository
	exporter *export.Exporter
}

func NewExportUseCase(repo interfaces.Repository, exporter *export.Exporter) *ExportUseCase {
	return &ExportUseCase{
		repo:     repo,
		exporter: exporter,
	}
}

// WriteAll exports the register identified by runID into dir, producing
// all three formats. Returns the paths of the written files.
func (uc *ExportUseCase) WriteAll(ctx context.Context, runID, dir string) ([]string, error) {
	register, err := uc.repo.Register().Get(ctx, runID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load register", goerr.V("runID", runID))
	}
	return uc.WriteRegister(ctx, register, dir)
}

// WriteRegister exports an already-loaded register into dir
func (uc *ExportUseCase) WriteRegister(ctx context.Context, register *model.Register, dir string) ([]string, error) {
	paths := []string{
		filepath.Join(dir, CSVFileName),
		filepath.Join(dir, JSONFileName),
		filepath.Join(dir, ReportFileName),
	}

	writers := []func(w io.Writer) error{
		func(w io.Writer) error { return uc.exporter.WriteCSV(w, register.Items) },
		func(w io.Writer) error { return uc.exporter.WriteJSON(w, register.Items) },
		func(w io.Writer) error { return uc.exporter.WriteReport(w, register) },
	}

	for i, path := range paths {
		if err := uc.exporter.WriteFile(ctx, path, writers[i]); err != nil {
			return nil, err
		}
	}

	logging.From(ctx).Info("register exported",
		"runID", register.RunID,
		"dir", dir,
		"files", len(paths),
	)

	return paths, nil
}
