package contact

import (
	"fmt"
	"strings"

	"evalkit/internal/domain/evalkit"
)

// ResultsEmail composes the German summary mail sent to the user after a
// submission. Plain text; the PDF report stays a separate download.
func ResultsEmail(sub Submission, role evalkit.Role) (subject, body string) {
	result := sub.EvaluationResult
	subject = fmt.Sprintf("Ihr EvalKit-Ergebnis: %s", result.Badge)

	var b strings.Builder
	name := strings.TrimSpace(sub.FirstName + " " + sub.LastName)
	if name == "" {
		name = "Guten Tag"
	} else {
		name = "Guten Tag " + name
	}
	fmt.Fprintf(&b, "%s,\n\n", name)
	fmt.Fprintf(&b, "vielen Dank für Ihre Selbsteinschätzung aus der Perspektive %q.\n\n", role.Name)
	fmt.Fprintf(&b, "Ihr Ergebnis: %s (Gesamtwert %.1f von %.0f)\n\n", result.Badge, result.Scores.Overall, evalkit.ScaleMax)

	b.WriteString("Ihre Werte:\n")
	for _, category := range evalkit.Categories() {
		fmt.Fprintf(&b, "  %s: %.1f\n", category.Label(), result.Scores.ByCategory(category))
	}

	b.WriteString("\nStärken:\n")
	for _, s := range result.Strengths {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	b.WriteString("\nEntwicklungsfelder:\n")
	for _, d := range result.DevelopmentAreas {
		fmt.Fprintf(&b, "  - %s\n", d)
	}
	b.WriteString("\nEmpfehlungen:\n")
	for _, r := range result.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", r)
	}

	b.WriteString("\nHerzliche Grüße\nIhr KIVISAI-Team\n")
	return subject, b.String()
}
