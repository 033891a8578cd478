// Package export formats enriched risk registers as CSV, JSON, and a
// narrative Markdown report. Exporters only read computed items; an I/O
// failure never touches the register itself.
package export

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/utils/safe"
)

// Exporter renders risk registers. The zero value is usable; options
// control metadata inclusion and the export clock.
type Exporter struct {
	includeMetadata bool
	now             func() time.Time
}

// Option configures an Exporter
type Option func(*Exporter)

// WithMetadata includes per-item metadata in the JSON export
func WithMetadata(enabled bool) Option {
	return func(e *Exporter) {
		e.includeMetadata = enabled
	}
}

// WithClock overrides the export timestamp source, mainly for stable
// golden-file output in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// New creates an Exporter
func New(opts ...Option) *Exporter {
	e := &Exporter{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WriteFile renders through fn into the named file, guaranteeing the
// file is closed on all paths.
func (e *Exporter) WriteFile(ctx context.Context, path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create export file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	if err := fn(f); err != nil {
		return goerr.Wrap(err, "failed to write export file", goerr.V("path", path))
	}
	return nil
}
