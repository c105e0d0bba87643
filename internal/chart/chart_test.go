package chart

import (
	"os"
	"strings"
	"testing"
)

func TestRankCategoriesOrderAndTotal(t *testing.T) {
	counts := map[string]string{
		"utilities":        "3",
		"education":        "10",
		"svo":              "10",
		"road_maintenance": "0",
		"ecology":          "junk",
	}

	ranked, total := rankCategories(counts)

	if total != 23 {
		t.Fatalf("total = %d, want 23 (zeros and unparseable values still counted as 0)", total)
	}
	if len(ranked) != 3 {
		t.Fatalf("ranked = %d entries, want 3 (zero-value categories dropped)", len(ranked))
	}

	// education precedes svo in the vocabulary, so the tie keeps that order.
	if ranked[0].Value != 10 || !strings.HasPrefix(ranked[0].Label, "Образование") {
		t.Errorf("ranked[0] = %+v, want Образование/10", ranked[0])
	}
	if ranked[1].Value != 10 || !strings.HasPrefix(ranked[1].Label, "СВО") {
		t.Errorf("ranked[1] = %+v, want СВО/10", ranked[1])
	}
	if ranked[2].Value != 3 || !strings.HasPrefix(ranked[2].Label, "ЖКХ") {
		t.Errorf("ranked[2] = %+v, want ЖКХ/3", ranked[2])
	}
}

func TestRankCategoriesPadsLabelsToCommonWidth(t *testing.T) {
	counts := map[string]string{
		"utilities":     "1",
		"illegal_dumps": "2",
	}
	ranked, _ := rankCategories(counts)
	if len(ranked) != 2 {
		t.Fatalf("ranked = %d entries, want 2", len(ranked))
	}

	var widths []int
	for _, entry := range ranked {
		for _, line := range strings.Split(entry.Label, "\n") {
			widths = append(widths, len([]rune(line)))
		}
	}
	for _, w := range widths[1:] {
		if w != widths[0] {
			t.Fatalf("label sub-lines not padded to a common width: %v", widths)
		}
	}
}

func TestRenderWritesOneImagePerNonZeroCategory(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	counts := map[string]string{
		"utilities": "5",
		"ecology":   "1",
		"education": "0",
	}

	paths, total, err := renderer.Render(counts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if total != 6 {
		t.Fatalf("total = %d, want 6", total)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %d, want 2", len(paths))
	}
	seen := map[string]struct{}{}
	for _, path := range paths {
		if _, dup := seen[path]; dup {
			t.Fatalf("duplicate artifact path %q", path)
		}
		seen[path] = struct{}{}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("empty artifact %s", path)
		}
	}
}

func TestRenderEmptyCountsProducesNoArtifacts(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	paths, total, err := renderer.Render(map[string]string{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
	if len(paths) != 0 {
		t.Fatalf("paths = %v, want none", paths)
	}
}
