package response_models

type ViewState string

const (
	ViewReady ViewState = "ready"
	ViewEmpty ViewState = "empty"
	ViewError ViewState = "error"
)

type SearchView struct {
	State             ViewState   `json:"state"`
	ErrorKind         string      `json:"error_kind,omitempty"`
	Message           string      `json:"message,omitempty"`
	ExternalSearchURL string      `json:"external_search_url,omitempty"`
	Query             string      `json:"query,omitempty"`
	Candidates        []Candidate `json:"candidates"`
}

type MapView struct {
	Embedded       bool        `json:"embedded"`
	Tier           GeoTier     `json:"tier"`
	Coordinate     *Coordinate `json:"coordinate,omitempty"`
	ExternalMapURL string      `json:"external_map_url"`
	Message        string      `json:"message,omitempty"`
}

type ReviewsView struct {
	State   ViewState `json:"state"`
	Message string    `json:"message,omitempty"`
	Reviews []Review  `json:"reviews"`
}

type SummaryView struct {
	State    ViewState `json:"state"`
	Message  string    `json:"message,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Keywords []string  `json:"keywords"`
	Pros     []string  `json:"pros"`
	Cons     []string  `json:"cons"`
	Rating   *float64  `json:"rating,omitempty"`
}

type DetailView struct {
	Candidate Candidate   `json:"candidate"`
	Map       MapView     `json:"map"`
	Reviews   ReviewsView `json:"reviews"`
	Summary   SummaryView `json:"summary"`
	Cached    bool        `json:"cached"`
}
