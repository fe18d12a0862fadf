package wizard

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/unicode/norm"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/pkg/utils"
)

const regionKey = "region"

var (
	ErrUnknownCategory = eris.Wrap(utils.ErrInvalidCategory, "wizard: unknown category")
	ErrRegionRequired  = eris.Wrap(utils.ErrInvalidInput, "wizard: region is required")
	ErrInvalidOption   = eris.Wrap(utils.ErrInvalidInput, "wizard: option is not offered for this step")
	ErrAtSummary       = eris.Wrap(utils.ErrInvalidInput, "wizard: all steps are answered")
	ErrNotAtSummary    = eris.Wrap(utils.ErrInvalidInput, "wizard: answer the remaining steps first")
	ErrNoPreviousStep  = eris.Wrap(utils.ErrInvalidInput, "wizard: already at the first step")
	ErrStepOutOfRange  = eris.Wrap(utils.ErrInvalidInput, "wizard: step not reached yet")
)

// Wizard walks a region step, then one step per category facet, then a
// summary pseudo-step. It performs no I/O and is not safe for concurrent use.
type Wizard struct {
	category db_models.Category
	facets   []Facet

	step    int
	reached int
	editing bool

	region  string
	answers map[string]string
}

func New(category db_models.Category) (*Wizard, error) {
	facets, ok := Facets(category)
	if !ok {
		return nil, ErrUnknownCategory
	}
	return &Wizard{
		category: category,
		facets:   facets,
		answers:  make(map[string]string),
	}, nil
}

func (w *Wizard) Category() db_models.Category { return w.category }

// TotalSteps counts question steps: the region step plus one per facet.
func (w *Wizard) TotalSteps() int { return 1 + len(w.facets) }

func (w *Wizard) Step() int { return w.step }

func (w *Wizard) AtSummary() bool { return w.step == w.TotalSteps() }

// Progress returns the 1-based question number and the completed fraction.
// The summary step reports total/total and 1.
func (w *Wizard) Progress() (current, total int, fraction float64) {
	total = w.TotalSteps()
	if w.AtSummary() {
		return total, total, 1
	}
	return w.step + 1, total, float64(w.step) / float64(total)
}

// Question describes the current step, or nil at the summary.
func (w *Wizard) Question() *response_models.WizardQuestion {
	if w.AtSummary() {
		return nil
	}
	if w.step == 0 {
		opts := make([]response_models.WizardOption, 0, len(Regions))
		for _, r := range Regions {
			opts = append(opts, response_models.WizardOption{Value: r, Label: r})
		}
		return &response_models.WizardQuestion{Key: regionKey, Label: "지역", Options: opts, Required: true}
	}
	q := facetQuestion(w.facets[w.step-1])
	return &q
}

func facetQuestion(f Facet) response_models.WizardQuestion {
	opts := make([]response_models.WizardOption, 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts, response_models.WizardOption{Value: o.Value, Label: o.Label})
	}
	return response_models.WizardQuestion{Key: f.Key, Label: f.Label, Options: opts}
}

// Answer records value for the current step and advances.
func (w *Wizard) Answer(value string) error {
	if w.AtSummary() {
		return ErrAtSummary
	}
	value = normalize(value)

	if w.step == 0 {
		if value == "" {
			return ErrRegionRequired
		}
		if utf8.RuneCountInString(value) > maxRegionRunes {
			return eris.Wrap(utils.ErrInvalidInput, "wizard: region is too long")
		}
		w.region = value
		w.advance()
		return nil
	}

	f := w.facets[w.step-1]
	if _, ok := f.option(value); !ok {
		return ErrInvalidOption
	}
	w.answers[f.Key] = value
	w.advance()
	return nil
}

// Skip leaves the current facet unanswered. The region step cannot be skipped.
func (w *Wizard) Skip() error {
	if w.AtSummary() {
		return ErrAtSummary
	}
	if w.step == 0 {
		return ErrRegionRequired
	}
	delete(w.answers, w.facets[w.step-1].Key)
	w.advance()
	return nil
}

// Back moves one step up. Answers given so far are kept.
func (w *Wizard) Back() error {
	if w.step == 0 {
		return ErrNoPreviousStep
	}
	w.editing = false
	w.step--
	return nil
}

// GoTo jumps to an already reached step. Answering it returns to the summary
// when the jump was made from there.
func (w *Wizard) GoTo(step int) error {
	if step < 0 || step > w.reached {
		return ErrStepOutOfRange
	}
	w.editing = w.AtSummary() && step < w.TotalSteps()
	w.step = step
	return nil
}

func (w *Wizard) advance() {
	if w.editing {
		w.editing = false
		w.step = w.TotalSteps()
	} else {
		w.step++
	}
	if w.step > w.reached {
		w.reached = w.step
	}
}

// Summary lists every question step with its answer.
func (w *Wizard) Summary() []response_models.WizardAnswer {
	out := make([]response_models.WizardAnswer, 0, w.TotalSteps())
	out = append(out, response_models.WizardAnswer{
		Key:     regionKey,
		Label:   "지역",
		Value:   w.region,
		Skipped: w.region == "",
	})
	for _, f := range w.facets {
		v, ok := w.answers[f.Key]
		out = append(out, response_models.WizardAnswer{Key: f.Key, Label: f.Label, Value: v, Skipped: !ok})
	}
	return out
}

// Build emits the search request. It is only available from the summary.
func (w *Wizard) Build() (request_models.SearchRequest, error) {
	if !w.AtSummary() {
		return request_models.SearchRequest{}, ErrNotAtSummary
	}
	if w.region == "" {
		return request_models.SearchRequest{}, ErrRegionRequired
	}
	facets := make(map[string]string, len(w.answers))
	for k, v := range w.answers {
		facets[k] = v
	}
	return request_models.SearchRequest{
		Category: w.category,
		Region:   w.region,
		Facets:   facets,
	}, nil
}

// State renders the wizard for the API.
func (w *Wizard) State(sessionID string) response_models.WizardResponse {
	current, total, fraction := w.Progress()
	return response_models.WizardResponse{
		SessionID:   sessionID,
		Category:    w.category,
		CurrentStep: current,
		TotalSteps:  total,
		Progress:    fraction,
		Question:    w.Question(),
		Answers:     w.Summary(),
		IsComplete:  w.AtSummary(),
	}
}

// normalize composes decomposed Hangul so "서울" typed on any client compares equal.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Normalize is exported for callers that accept wizard-shaped input directly.
func Normalize(s string) string { return normalize(s) }
