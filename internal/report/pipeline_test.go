package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// fakeCharts writes real files so cleanup can be observed.
type fakeCharts struct {
	dir     string
	count   int
	failOn  int // 1-based index that fails mid-render; 0 disables
	written []string
}

func (f *fakeCharts) Render(counts map[string]string) ([]string, int, error) {
	for i := 0; i < f.count; i++ {
		if f.failOn > 0 && i+1 == f.failOn {
			return f.written, 0, errors.New("disk full")
		}
		path := filepath.Join(f.dir, "chart_"+uuid.NewString()+".png")
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			return f.written, 0, err
		}
		f.written = append(f.written, path)
	}
	return f.written, 42, nil
}

type fakeBackend struct {
	err  error
	html string
}

func (f *fakeBackend) Render(ctx context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}

func assertNoArtifacts(t *testing.T, paths []string) {
	t.Helper()
	for _, path := range paths {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("artifact %s survived the run", path)
		}
	}
}

func TestGenerateSuccessCleansUpArtifacts(t *testing.T) {
	charts := &fakeCharts{dir: t.TempDir(), count: 3}
	backend := &fakeBackend{}

	gen, err := NewGenerator(charts, backend, nil, "за I полугодие 2025 года")
	if err != nil {
		t.Fatalf("generator: %v", err)
	}

	out, err := gen.Generate(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document returned")
	}
	if len(charts.written) != 3 {
		t.Fatalf("expected 3 artifacts written, got %d", len(charts.written))
	}
	assertNoArtifacts(t, charts.written)

	if !strings.Contains(backend.html, "за I полугодие 2025 года") {
		t.Error("period label missing from page")
	}
	if !strings.Contains(backend.html, "file://"+charts.written[0]) {
		t.Error("chart reference missing from page")
	}
	if !strings.Contains(backend.html, "<strong>42</strong> письменных") {
		t.Error("chart total missing from narrative")
	}
}

func TestGenerateBackendFailureStillCleansUp(t *testing.T) {
	charts := &fakeCharts{dir: t.TempDir(), count: 2}
	backend := &fakeBackend{err: errors.New("wkhtmltopdf exited 1")}

	gen, err := NewGenerator(charts, backend, nil, "")
	if err != nil {
		t.Fatalf("generator: %v", err)
	}

	if _, err := gen.Generate(context.Background(), sampleReport()); err == nil {
		t.Fatal("expected backend failure to propagate")
	}
	assertNoArtifacts(t, charts.written)
}

func TestGenerateChartFailureCleansUpPartialArtifacts(t *testing.T) {
	charts := &fakeCharts{dir: t.TempDir(), count: 3, failOn: 3}
	backend := &fakeBackend{}

	gen, err := NewGenerator(charts, backend, nil, "")
	if err != nil {
		t.Fatalf("generator: %v", err)
	}

	if _, err := gen.Generate(context.Background(), sampleReport()); err == nil {
		t.Fatal("expected chart failure to propagate")
	}
	if backend.html != "" {
		t.Error("backend invoked despite chart failure")
	}
	if len(charts.written) != 2 {
		t.Fatalf("expected 2 partial artifacts, got %d", len(charts.written))
	}
	assertNoArtifacts(t, charts.written)
}

func TestNewGeneratorValidatesCollaborators(t *testing.T) {
	if _, err := NewGenerator(nil, &fakeBackend{}, nil, ""); err == nil {
		t.Error("nil chart renderer accepted")
	}
	if _, err := NewGenerator(&fakeCharts{}, nil, nil, ""); err == nil {
		t.Error("nil backend accepted")
	}
}
