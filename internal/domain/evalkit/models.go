package evalkit

// Category is one of the five fixed competency dimensions questions and
// scores are grouped by. The declaration order is significant: it fixes the
// angular position on the radar chart and breaks ties when ranking
// strengths and development areas.
type Category string

const (
	CategoryThink   Category = "THINK"
	CategoryEnable  Category = "ENABLE"
	CategoryShare   Category = "SHARE"
	CategoryGrow    Category = "GROW"
	CategoryReflect Category = "REFLECT"
)

var categoryOrder = []Category{
	CategoryThink,
	CategoryEnable,
	CategoryShare,
	CategoryGrow,
	CategoryReflect,
}

// Categories returns the five dimensions in their fixed declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

var categoryLabels = map[Category]string{
	CategoryThink:   "THINK - Verstehen & Einordnen",
	CategoryEnable:  "ENABLE - Befähigen & Umsetzen",
	CategoryShare:   "SHARE - Teilen & Vernetzen",
	CategoryGrow:    "GROW - Wachsen & Skalieren",
	CategoryReflect: "REFLECT - Reflektieren & Verantworten",
}

// Label returns the German display label for a category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

type Role struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Thesis      string     `json:"thesis"`
	Questions   []Question `json:"questions"`
}

// Level is the discrete maturity classification derived from the overall score.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Scores holds the per-category averages plus the overall mean, all in
// [ScaleMin-1, ScaleMax] (a category average can never drop below ScaleMin
// for answered questions, but 0 is the printable floor).
type Scores struct {
	Think   float64 `json:"think"`
	Enable  float64 `json:"enable"`
	Share   float64 `json:"share"`
	Grow    float64 `json:"grow"`
	Reflect float64 `json:"reflect"`
	Overall float64 `json:"overall"`
}

// ByCategory returns the score for a single dimension.
func (s Scores) ByCategory(c Category) float64 {
	switch c {
	case CategoryThink:
		return s.Think
	case CategoryEnable:
		return s.Enable
	case CategoryShare:
		return s.Share
	case CategoryGrow:
		return s.Grow
	case CategoryReflect:
		return s.Reflect
	}
	return 0
}

func (s *Scores) setCategory(c Category, v float64) {
	switch c {
	case CategoryThink:
		s.Think = v
	case CategoryEnable:
		s.Enable = v
	case CategoryShare:
		s.Share = v
	case CategoryGrow:
		s.Grow = v
	case CategoryReflect:
		s.Reflect = v
	}
}

// EvaluationResult is the immutable outcome of scoring one answer set.
type EvaluationResult struct {
	Role             string   `json:"role"`
	Scores           Scores   `json:"scores"`
	Level            Level    `json:"level"`
	Badge            string   `json:"badge"`
	Strengths        []string `json:"strengths"`
	DevelopmentAreas []string `json:"developmentAreas"`
	Recommendations  []string `json:"recommendations"`
}
