package response_models

import (
	"time"

	"weddy/internal/models/db_models"
)

const MaxKeywords = 5

type Review struct {
	Title         string     `json:"title"`
	Snippet       string     `json:"snippet"`
	SourceLink    string     `json:"source_link"`
	Author        string     `json:"author,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

// EnrichmentResult is best effort: ReviewsError and SummaryError report the
// step that failed while the rest of the result stays usable.
type EnrichmentResult struct {
	Name         string             `json:"name"`
	Category     db_models.Category `json:"category"`
	Summary      string             `json:"summary"`
	Keywords     []string           `json:"keywords"`
	Pros         []string           `json:"pros"`
	Cons         []string           `json:"cons"`
	Rating       *float64           `json:"rating,omitempty"`
	Reviews      []Review           `json:"reviews"`
	ReviewsError string             `json:"reviews_error,omitempty"`
	SummaryError string             `json:"summary_error,omitempty"`
	FetchedAt    time.Time          `json:"fetched_at"`
	Cached       bool               `json:"cached"`
}

// Complete reports whether every step that had to run succeeded.
func (r *EnrichmentResult) Complete() bool {
	return r.ReviewsError == "" && r.SummaryError == ""
}
