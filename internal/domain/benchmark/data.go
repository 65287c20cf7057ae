package benchmark

var industries = []string{
	"IT & Software",
	"Beratung & Dienstleistungen",
	"Industrie & Produktion",
	"Handel & E-Commerce",
	"Gesundheit & Soziales",
	"Öffentlicher Sektor",
	"Bildung & Forschung",
}

var companySizes = []string{
	"1-10 Mitarbeitende",
	"11-50 Mitarbeitende",
	"51-250 Mitarbeitende",
	"251-1000 Mitarbeitende",
	"Über 1000 Mitarbeitende",
}

// Segments with enough submissions for a stable average. The grid is
// deliberately sparse: combinations without data simply have no entry.
var segments = []Data{
	{
		Industry:      "IT & Software",
		CompanySize:   "1-10 Mitarbeitende",
		SampleSize:    87,
		AverageScores: CategoryScores{Think: 3.9, Enable: 4.0, Share: 3.4, Grow: 3.6, Reflect: 3.1},
	},
	{
		Industry:      "IT & Software",
		CompanySize:   "11-50 Mitarbeitende",
		SampleSize:    142,
		AverageScores: CategoryScores{Think: 3.8, Enable: 3.9, Share: 3.3, Grow: 3.5, Reflect: 3.0},
	},
	{
		Industry:      "IT & Software",
		CompanySize:   "51-250 Mitarbeitende",
		SampleSize:    96,
		AverageScores: CategoryScores{Think: 3.7, Enable: 3.7, Share: 3.2, Grow: 3.4, Reflect: 3.1},
	},
	{
		Industry:      "Beratung & Dienstleistungen",
		CompanySize:   "1-10 Mitarbeitende",
		SampleSize:    118,
		AverageScores: CategoryScores{Think: 3.6, Enable: 3.4, Share: 3.5, Grow: 3.3, Reflect: 3.2},
	},
	{
		Industry:      "Beratung & Dienstleistungen",
		CompanySize:   "11-50 Mitarbeitende",
		SampleSize:    73,
		AverageScores: CategoryScores{Think: 3.5, Enable: 3.3, Share: 3.4, Grow: 3.2, Reflect: 3.1},
	},
	{
		Industry:      "Industrie & Produktion",
		CompanySize:   "51-250 Mitarbeitende",
		SampleSize:    64,
		AverageScores: CategoryScores{Think: 2.9, Enable: 2.7, Share: 2.5, Grow: 2.8, Reflect: 2.6},
	},
	{
		Industry:      "Industrie & Produktion",
		CompanySize:   "251-1000 Mitarbeitende",
		SampleSize:    58,
		AverageScores: CategoryScores{Think: 3.0, Enable: 2.8, Share: 2.6, Grow: 2.9, Reflect: 2.7},
	},
	{
		Industry:      "Industrie & Produktion",
		CompanySize:   "Über 1000 Mitarbeitende",
		SampleSize:    41,
		AverageScores: CategoryScores{Think: 3.2, Enable: 3.0, Share: 2.8, Grow: 3.1, Reflect: 2.9},
	},
	{
		Industry:      "Handel & E-Commerce",
		CompanySize:   "11-50 Mitarbeitende",
		SampleSize:    52,
		AverageScores: CategoryScores{Think: 3.3, Enable: 3.2, Share: 2.9, Grow: 3.1, Reflect: 2.7},
	},
	{
		Industry:      "Handel & E-Commerce",
		CompanySize:   "51-250 Mitarbeitende",
		SampleSize:    47,
		AverageScores: CategoryScores{Think: 3.2, Enable: 3.1, Share: 2.8, Grow: 3.0, Reflect: 2.6},
	},
	{
		Industry:      "Gesundheit & Soziales",
		CompanySize:   "51-250 Mitarbeitende",
		SampleSize:    39,
		AverageScores: CategoryScores{Think: 2.7, Enable: 2.4, Share: 2.6, Grow: 2.5, Reflect: 3.0},
	},
	{
		Industry:      "Öffentlicher Sektor",
		CompanySize:   "251-1000 Mitarbeitende",
		SampleSize:    45,
		AverageScores: CategoryScores{Think: 2.6, Enable: 2.3, Share: 2.4, Grow: 2.4, Reflect: 2.9},
	},
	{
		Industry:      "Öffentlicher Sektor",
		CompanySize:   "Über 1000 Mitarbeitende",
		SampleSize:    61,
		AverageScores: CategoryScores{Think: 2.8, Enable: 2.5, Share: 2.6, Grow: 2.6, Reflect: 3.0},
	},
	{
		Industry:      "Bildung & Forschung",
		CompanySize:   "51-250 Mitarbeitende",
		SampleSize:    55,
		AverageScores: CategoryScores{Think: 3.4, Enable: 2.9, Share: 3.3, Grow: 3.0, Reflect: 3.4},
	},
}
