// Package chart renders per-category bar images for the citizen-request
// breakdown. Each surviving category becomes its own standalone PNG so the
// rendering backend can embed them as fixed-size inline images.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"deputyreport/internal/morph"
)

// CategoryCount is one ranked chart entry derived from the request counts.
type CategoryCount struct {
	Label string
	Value int
}

// Fixed vocabulary of chartable request topics. Labels with an embedded
// line break render as two-line annotations. The appeals-to-leadership
// counter is deliberately absent: it is rendered as a highlight line in the
// narrative instead of a bar.
var categories = []struct {
	key   string
	label string
}{
	{"utilities", "ЖКХ"},
	{"pensions_and_social_payments", "Пенсии и выплаты"},
	{"improvement", "Благоустройство"},
	{"education", "Образование"},
	{"svo", "СВО"},
	{"road_maintenance", "Дороги"},
	{"ecology", "Экология"},
	{"medicine_and_healthcare", "Медицина"},
	{"public_transport", "Транспорт"},
	{"illegal_dumps", "Несанкционированные\nсвалки"},
	{"legal_aid_requests", "Юридическая помощь"},
	{"integrated_territory_development", "Развитие территорий"},
	{"stray_animal_issues", "Бесхозяйные животные"},
	{"legislative_proposals", "Законодательные\nпредложения"},
}

const (
	imgWidth   = 1500
	labelRight = 430.0
	barLeft    = 460.0
	barRight   = 1460.0
	lineHeight = 44
	barHeight  = 28.0

	accentColor = "#394B8C"
)

// Renderer draws category bar images into a directory of transient
// artifacts. Construct once and share; Render is safe for concurrent use
// because every call writes only uniquely named files.
type Renderer struct {
	dir       string
	labelFace font.Face
	valueFace font.Face
}

// NewRenderer prepares fonts and ensures the artifact directory exists.
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}
	labelFace, err := loadFace(gomono.TTF, 26)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	valueFace, err := loadFace(gobold.TTF, 26)
	if err != nil {
		return nil, fmt.Errorf("load value font: %w", err)
	}
	return &Renderer{dir: dir, labelFace: labelFace, valueFace: valueFace}, nil
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Render produces one bar image per non-zero category, ordered by value
// descending, and returns the artifact paths plus the total of all category
// values including the filtered zeros. On a write failure the partial path
// list is returned alongside the error so the caller can clean up.
func (r *Renderer) Render(counts map[string]string) ([]string, int, error) {
	ranked, total := rankCategories(counts)
	if len(ranked) == 0 {
		return nil, total, nil
	}

	maxValue := ranked[0].Value
	var paths []string
	for _, category := range ranked {
		path, err := filepath.Abs(filepath.Join(r.dir, fmt.Sprintf("chart_%s.png", uuid.NewString())))
		if err != nil {
			return paths, total, fmt.Errorf("resolve chart path: %w", err)
		}
		paths = append(paths, path)
		if err := r.drawBar(path, category, maxValue); err != nil {
			return paths, total, fmt.Errorf("render chart %q: %w", category.Label, err)
		}
	}
	return paths, total, nil
}

// rankCategories maps raw counts onto padded labels, drops zero-value
// entries and sorts the rest by value descending. The sort is stable so
// ties keep the vocabulary order. The returned total includes the dropped
// zeros.
func rankCategories(counts map[string]string) ([]CategoryCount, int) {
	maxWidth := 0
	for _, category := range categories {
		for _, line := range strings.Split(category.label, "\n") {
			if w := utf8.RuneCountInString(line); w > maxWidth {
				maxWidth = w
			}
		}
	}

	total := 0
	var ranked []CategoryCount
	for _, category := range categories {
		value := morph.ParseCount(counts[category.key])
		if value < 0 {
			value = 0
		}
		total += value
		if value == 0 {
			continue
		}
		ranked = append(ranked, CategoryCount{Label: padLabel(category.label, maxWidth), Value: value})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })
	return ranked, total
}

// padLabel right-pads every sub-line to the given rune width so label
// blocks stay aligned across independently generated images.
func padLabel(label string, width int) string {
	lines := strings.Split(label, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if pad := width - utf8.RuneCountInString(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) drawBar(path string, category CategoryCount, maxValue int) error {
	lines := strings.Split(category.Label, "\n")
	height := lineHeight*len(lines) + 16

	dc := gg.NewContext(imgWidth, height)
	cy := float64(height) / 2

	scale := float64(category.Value) / (float64(maxValue) * 1.1)
	barLen := scale * (barRight - barLeft)

	dc.SetHexColor(accentColor)
	dc.DrawRectangle(barLeft, cy-barHeight/2, barLen, barHeight)
	dc.Fill()

	// Value label: inside the bar tip when the bar is long enough to hold
	// it, otherwise just past the tip.
	dc.SetFontFace(r.valueFace)
	value := fmt.Sprintf("%d", category.Value)
	if category.Value > maxValue/15 {
		dc.SetHexColor("#FFFFFF")
		dc.DrawStringAnchored(value, barLeft+barLen-10, cy, 1, 0.35)
	} else {
		dc.SetHexColor("#000000")
		dc.DrawStringAnchored(value, barLeft+barLen+12, cy, 0, 0.35)
	}

	dc.SetFontFace(r.labelFace)
	dc.SetHexColor("#000000")
	offset := cy - float64(lineHeight)*(float64(len(lines))-1)/2
	for i, line := range lines {
		y := offset + float64(i*lineHeight)
		dc.DrawStringAnchored(line, labelRight, y, 1, 0.35)
	}

	dc.SetHexColor(accentColor)
	dc.SetLineWidth(2)
	dc.DrawLine(10, float64(height)-4, labelRight+10, float64(height)-4)
	dc.Stroke()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
