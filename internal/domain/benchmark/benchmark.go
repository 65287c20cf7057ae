// Package benchmark provides reference average scores per industry and
// company-size segment, for comparison overlays on evaluation results.
// The table is static content; a segment without data is an expected case
// and reported via the second return value, never as an error.
package benchmark

import "evalkit/internal/domain/evalkit"

type CategoryScores struct {
	Think   float64 `json:"think"`
	Enable  float64 `json:"enable"`
	Share   float64 `json:"share"`
	Grow    float64 `json:"grow"`
	Reflect float64 `json:"reflect"`
}

// ByCategory returns the average for a single dimension.
func (s CategoryScores) ByCategory(c evalkit.Category) float64 {
	switch c {
	case evalkit.CategoryThink:
		return s.Think
	case evalkit.CategoryEnable:
		return s.Enable
	case evalkit.CategoryShare:
		return s.Share
	case evalkit.CategoryGrow:
		return s.Grow
	case evalkit.CategoryReflect:
		return s.Reflect
	}
	return 0
}

type Data struct {
	Industry      string         `json:"industry"`
	CompanySize   string         `json:"companySize"`
	SampleSize    int            `json:"sampleSize"`
	AverageScores CategoryScores `json:"averageScores"`
}

var table = map[string]Data{}

func init() {
	for _, d := range segments {
		table[key(d.Industry, d.CompanySize)] = d
	}
}

func key(industry, companySize string) string {
	return industry + "\x00" + companySize
}

// Lookup returns the benchmark for an (industry, companySize) pair. The
// second return value is false when no data exists for that combination.
func Lookup(industry, companySize string) (Data, bool) {
	d, ok := table[key(industry, companySize)]
	return d, ok
}

// Industries returns the industry axis of the segment grid, in table order.
func Industries() []string {
	return append([]string(nil), industries...)
}

// CompanySizes returns the company-size axis of the segment grid, in table order.
func CompanySizes() []string {
	return append([]string(nil), companySizes...)
}
