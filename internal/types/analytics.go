package types

// TrendPoint is one day of the applications trend series.
type TrendPoint struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
}

// AnalyticsSummary aggregates the company (or admin) dashboard figures.
type AnalyticsSummary struct {
	Jobs           int            `json:"jobs"`
	OpenJobs       int            `json:"open_jobs"`
	Applications   int            `json:"applications"`
	ByStatus       map[string]int `json:"by_status,omitempty"`
	ScoreHistogram map[string]int `json:"score_histogram,omitempty"`
	AvgScore       *float64       `json:"avg_score,omitempty"`
	Trend30d       []TrendPoint   `json:"trend_30d,omitempty"`
}
