package evalkit

import (
	"fmt"
	"sort"
)

// Score evaluates one answer set against a role's question catalog.
//
// Policy, applied uniformly:
//   - answers must lie in [ScaleMin, ScaleMax]; out-of-range values are
//     rejected, never clamped
//   - answer ids must belong to the role's question set
//   - missing answers are excluded from the category mean, not counted as zero
//   - a category without a single answered question rejects the submission
//
// Scoring is a pure function of (role, answers, catalog): identical inputs
// produce identical results. Aggregation walks the role's ordered question
// list so map iteration order never leaks into output or error reporting.
func Score(roleID string, answers map[string]float64) (EvaluationResult, error) {
	role, err := RoleByID(roleID)
	if err != nil {
		return EvaluationResult{}, err
	}

	known := make(map[string]struct{}, len(role.Questions))
	for _, q := range role.Questions {
		known[q.ID] = struct{}{}
	}
	var unknown []string
	for id := range answers {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return EvaluationResult{}, &ValidationError{
			Field:  unknown[0],
			Reason: fmt.Sprintf("no such question for role %q", role.ID),
		}
	}

	sums := make(map[Category]float64, len(categoryOrder))
	counts := make(map[Category]int, len(categoryOrder))
	for _, q := range role.Questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if value < ScaleMin || value > ScaleMax {
			return EvaluationResult{}, &ValidationError{
				Field:  q.ID,
				Reason: fmt.Sprintf("answer %g outside scale [%g, %g]", value, ScaleMin, ScaleMax),
			}
		}
		sums[q.Category] += value
		counts[q.Category]++
	}

	var scores Scores
	var total float64
	for _, category := range categoryOrder {
		if counts[category] == 0 {
			return EvaluationResult{}, &ValidationError{
				Field:  string(category),
				Reason: "insufficient answers for category",
			}
		}
		avg := sums[category] / float64(counts[category])
		scores.setCategory(category, avg)
		total += avg
	}
	scores.Overall = total / float64(len(categoryOrder))

	return deriveResult(role.ID, scores), nil
}

// DeriveResult rebuilds a full EvaluationResult from a role id and its
// category scores, for callers that hold scores without the raw answers
// (receipt tokens). Overall is recomputed from the five category scores so
// the mean invariant holds regardless of what the caller passed in.
func DeriveResult(roleID string, scores Scores) (EvaluationResult, error) {
	if _, err := RoleByID(roleID); err != nil {
		return EvaluationResult{}, err
	}
	var total float64
	for _, category := range categoryOrder {
		v := scores.ByCategory(category)
		if v < 0 || v > ScaleMax {
			return EvaluationResult{}, &ValidationError{
				Field:  string(category),
				Reason: fmt.Sprintf("score %g outside [0, %g]", v, ScaleMax),
			}
		}
		total += v
	}
	scores.Overall = total / float64(len(categoryOrder))
	return deriveResult(roleID, scores), nil
}

func deriveResult(roleID string, scores Scores) EvaluationResult {
	level := classify(scores.Overall)

	desc := rankCategories(scores, false)
	asc := rankCategories(scores, true)

	strengths := make([]string, 0, strengthCount)
	for _, category := range desc[:strengthCount] {
		strengths = append(strengths, strengthPhrases[category])
	}

	developmentAreas := make([]string, 0, developmentCount)
	recommendations := make([]string, 0, developmentCount*2)
	for _, category := range asc[:developmentCount] {
		developmentAreas = append(developmentAreas, developmentPhrases[category])
		recommendations = append(recommendations, recommendationCatalog[category]...)
	}

	return EvaluationResult{
		Role:             roleID,
		Scores:           scores,
		Level:            level,
		Badge:            Badge(level),
		Strengths:        strengths,
		DevelopmentAreas: developmentAreas,
		Recommendations:  recommendations,
	}
}

func classify(overall float64) Level {
	switch {
	case overall >= thresholdExpert:
		return LevelExpert
	case overall >= thresholdAdvanced:
		return LevelAdvanced
	case overall >= thresholdIntermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// rankCategories orders the five categories by score; ties keep the fixed
// declaration order (THINK first).
func rankCategories(scores Scores, ascending bool) []Category {
	ranked := Categories()
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := scores.ByCategory(ranked[i]), scores.ByCategory(ranked[j])
		if ascending {
			return a < b
		}
		return a > b
	})
	return ranked
}
