package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

const pointsPerCM = 72 / 2.54

// approx reports whether value is within tolerance of expected.
// A small epsilon absorbs unit conversion error.
func approx(value, expected, tolerance float64) bool {
	return math.Abs(value-expected) <= tolerance+1e-9
}

func pointsToCM(pt float64) float64 {
	return pt / pointsPerCM
}

// sizeAllowed reports whether size is near any allowed size.
func sizeAllowed(size float64, allowed []float64, tolerance float64) bool {
	for _, a := range allowed {
		if approx(size, a, tolerance) {
			return true
		}
	}
	return false
}

// fontAllowed matches family names case-insensitively as substrings,
// so "Times New Roman Cyr" passes for "Times New Roman".
func fontAllowed(name string, families []string) bool {
	lower := strings.ToLower(name)
	for _, f := range families {
		if strings.Contains(lower, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// textRuns returns runs carrying visible text. A paragraph with none
// is represented by a single run holding its paragraph-level formatting.
func textRuns(p domain.Paragraph) []domain.Run {
	var out []domain.Run
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		out = append(out, domain.Run{
			Text:     p.Text,
			FontName: p.FontName,
			FontSize: p.FontSize,
			Bold:     p.Bold,
			Italic:   p.Italic,
		})
	}
	return out
}

// firstBadSize returns the first resolved run size outside the allowed set.
func firstBadSize(p domain.Paragraph, allowed []float64, tolerance float64) (float64, bool) {
	for _, r := range textRuns(p) {
		if r.FontSize > 0 && !sizeAllowed(r.FontSize, allowed, tolerance) {
			return r.FontSize, true
		}
	}
	return 0, false
}

// firstBadFont returns the first resolved run font outside the families.
func firstBadFont(p domain.Paragraph, families []string) (string, bool) {
	for _, r := range textRuns(p) {
		if r.FontName != "" && !fontAllowed(r.FontName, families) {
			return r.FontName, true
		}
	}
	return "", false
}

func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = formatPoints(s)
	}
	return strings.Join(parts, "/")
}

func formatPoints(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f pt", v)
	}
	return fmt.Sprintf("%.1f pt", v)
}
