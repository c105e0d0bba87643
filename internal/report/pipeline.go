package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

// ChartRenderer produces the transient per-category bar images. A failed
// render may still return the paths written so far; the pipeline owns their
// cleanup either way.
type ChartRenderer interface {
	Render(counts map[string]string) ([]string, int, error)
}

// Backend converts the composed HTML (with local image references) into the
// final paginated document.
type Backend interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// Generator runs one synchronous generation pipeline per call: charts →
// narrative → page shell → backend render, with guaranteed deletion of the
// transient chart artifacts whatever the outcome.
type Generator struct {
	Charts      ChartRenderer
	Backend     Backend
	Log         *logrus.Logger
	PeriodLabel string
	// DebugHTMLPath, when set, receives a copy of the composed HTML on
	// every run.
	DebugHTMLPath string
}

// NewGenerator constructs a Generator.
func NewGenerator(charts ChartRenderer, backend Backend, log *logrus.Logger, periodLabel string) (*Generator, error) {
	if charts == nil {
		return nil, errors.New("generator requires a chart renderer")
	}
	if backend == nil {
		return nil, errors.New("generator requires a rendering backend")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Generator{Charts: charts, Backend: backend, Log: log, PeriodLabel: periodLabel}, nil
}

// Generate turns one validated report into the final document bytes.
func (g *Generator) Generate(ctx context.Context, rep Report) ([]byte, error) {
	paths, total, err := g.Charts.Render(rep.CitizenRequests.Requests.ChartCounts())
	defer g.removeArtifacts(paths)
	if err != nil {
		return nil, fmt.Errorf("render category charts: %w", err)
	}

	sections := ComposeSections(rep, paths, total)
	page, err := renderPage(rep, g.PeriodLabel, sections)
	if err != nil {
		return nil, err
	}

	if g.DebugHTMLPath != "" {
		if err := os.WriteFile(g.DebugHTMLPath, []byte(page), 0o644); err != nil {
			g.Log.WithError(err).Warn("write debug HTML")
		}
	}

	out, err := g.Backend.Render(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return out, nil
}

func (g *Generator) removeArtifacts(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			g.Log.WithError(err).WithField("path", path).Warn("remove chart artifact")
		}
	}
}
