package report

import (
	"bytes"
	"testing"

	"evalkit/internal/domain/benchmark"
	"evalkit/internal/domain/evalkit"
)

func sampleResult(t *testing.T) (evalkit.EvaluationResult, evalkit.Role) {
	t.Helper()
	role, err := evalkit.RoleByID("mensch")
	if err != nil {
		t.Fatalf("RoleByID failed: %v", err)
	}
	answers := make(map[string]float64, len(role.Questions))
	for _, q := range role.Questions {
		answers[q.ID] = 4
	}
	result, err := evalkit.Score(role.ID, answers)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	return result, role
}

func TestBuildWithoutBenchmark(t *testing.T) {
	result, role := sampleResult(t)

	out, err := Build(result, role, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %.8q", out)
	}
	if len(out) < 1000 {
		t.Fatalf("suspiciously small report: %d bytes", len(out))
	}
}

func TestBuildWithBenchmark(t *testing.T) {
	result, role := sampleResult(t)
	bench, ok := benchmark.Lookup("IT & Software", "11-50 Mitarbeitende")
	if !ok {
		t.Fatal("expected known benchmark segment")
	}

	out, err := Build(result, role, &bench)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}
