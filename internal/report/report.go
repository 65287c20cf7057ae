// Package report builds the downloadable PDF version of an evaluation
// result: badge, radar chart, per-category scores and recommendations.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"evalkit/internal/chart"
	"evalkit/internal/domain/benchmark"
	"evalkit/internal/domain/evalkit"
)

var levelNames = map[evalkit.Level]string{
	evalkit.LevelBeginner:     "Einsteiger",
	evalkit.LevelIntermediate: "Fortgeschritten",
	evalkit.LevelAdvanced:     "Weit fortgeschritten",
	evalkit.LevelExpert:       "Experte",
}

// Build renders the results report as PDF bytes. Nothing is written to
// disk; the document only exists for the duration of the export request.
func Build(result evalkit.EvaluationResult, role evalkit.Role, bench *benchmark.Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(40, 10, tr("KIVISAI EvalKit - Ergebnisbericht"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Perspektive: %s", role.Name)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, tr(role.Thesis), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s  (%s, Gesamtwert %.1f von %.0f)",
		result.Badge, levelNames[result.Level], result.Scores.Overall, evalkit.ScaleMax)))
	pdf.Ln(10)

	data := make([]chart.Datum, 0, 5)
	for _, category := range evalkit.Categories() {
		d := chart.Datum{
			Category:  string(category),
			UserScore: result.Scores.ByCategory(category),
			MaxScore:  evalkit.ScaleMax,
		}
		if bench != nil {
			avg := bench.AverageScores.ByCategory(category)
			d.BenchmarkScore = &avg
		}
		data = append(data, d)
	}
	canvas := chart.NewPDF(pdf, 55, pdf.GetY(), 100, 100)
	chart.Render(canvas, data, chart.Options{ShowBenchmark: bench != nil})
	pdf.SetY(pdf.GetY() + 105)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Werte im Einzelnen"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, category := range evalkit.Categories() {
		line := fmt.Sprintf("%s: %.1f", category.Label(), result.Scores.ByCategory(category))
		if bench != nil {
			line += fmt.Sprintf("  (Benchmark %.1f)", bench.AverageScores.ByCategory(category))
		}
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(5)
	}
	if bench != nil {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 5, tr(fmt.Sprintf("Benchmark: %s, %s (n=%d)",
			bench.Industry, bench.CompanySize, bench.SampleSize)))
		pdf.Ln(6)
	}

	writeList := func(title string, items []string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range items {
			pdf.MultiCell(0, 5, tr("- "+item), "", "L", false)
			pdf.Ln(1)
		}
	}
	writeList("Stärken", result.Strengths)
	writeList("Entwicklungsfelder", result.DevelopmentAreas)
	writeList("Empfehlungen", result.Recommendations)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
