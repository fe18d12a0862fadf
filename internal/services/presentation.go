package services

import (
	"strings"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/pkg/naver"
	"weddy/pkg/utils"
)

// SearchViewOf maps a search outcome to the list view state. Failures still
// carry an external search link so the user has somewhere to go.
func SearchViewOf(req request_models.SearchRequest, query string, candidates []response_models.Candidate, err error) response_models.SearchView {
	fallback := query
	if fallback == "" {
		info, _ := db_models.LookupCategory(req.Category)
		fallback = strings.TrimSpace(req.Region + " " + info.Keyword)
	}

	if err != nil {
		view := response_models.SearchView{
			State:      response_models.ViewError,
			Query:      query,
			Candidates: []response_models.Candidate{},
			Message:    "Search failed, try again",
		}
		if se, ok := utils.AsSearchError(err); ok {
			view.ErrorKind = string(se.Kind)
			view.Message = SearchErrorMessage(se.Kind)
		}
		if fallback != "" {
			view.ExternalSearchURL = naver.WebSearchURL(fallback)
		}
		return view
	}

	if len(candidates) == 0 {
		return response_models.SearchView{
			State:             response_models.ViewEmpty,
			Query:             query,
			Message:           "No results, loosen the filters or search externally",
			ExternalSearchURL: naver.WebSearchURL(fallback),
			Candidates:        []response_models.Candidate{},
		}
	}

	return response_models.SearchView{
		State:      response_models.ViewReady,
		Query:      query,
		Candidates: candidates,
	}
}

func SearchErrorMessage(kind utils.SearchErrorKind) string {
	switch kind {
	case utils.SearchEmptyQuery:
		return "Choose a region before searching"
	case utils.SearchRateLimited:
		return "Too many searches, try again shortly"
	default:
		return "Search provider is unavailable, try the external search instead"
	}
}

// DetailViewOf renders the map, reviews and summary regions independently so
// one failing never hides the others.
func DetailViewOf(c response_models.Candidate, geo response_models.GeoResult, enr *response_models.EnrichmentResult) response_models.DetailView {
	view := response_models.DetailView{
		Candidate: c,
		Map: response_models.MapView{
			Embedded:       geo.Coordinate != nil,
			Tier:           geo.Tier,
			Coordinate:     geo.Coordinate,
			ExternalMapURL: geo.ExternalMapURL,
		},
		Cached: enr.Cached,
	}
	if geo.Coordinate == nil {
		view.Map.Message = "Map preview is unavailable, open it in the map app"
	}

	switch {
	case enr.ReviewsError != "":
		view.Reviews = response_models.ReviewsView{State: response_models.ViewError, Message: enr.ReviewsError, Reviews: []response_models.Review{}}
	case len(enr.Reviews) == 0:
		view.Reviews = response_models.ReviewsView{State: response_models.ViewEmpty, Message: "No reviews yet", Reviews: []response_models.Review{}}
	default:
		view.Reviews = response_models.ReviewsView{State: response_models.ViewReady, Reviews: enr.Reviews}
	}

	summary := response_models.SummaryView{
		Keywords: nonNil(enr.Keywords),
		Pros:     nonNil(enr.Pros),
		Cons:     nonNil(enr.Cons),
	}
	switch {
	case enr.SummaryError != "":
		summary.State = response_models.ViewError
		summary.Message = enr.SummaryError
	case enr.ReviewsError != "" || len(enr.Reviews) == 0:
		summary.State = response_models.ViewEmpty
		summary.Message = "Not enough reviews to summarize"
	default:
		summary.State = response_models.ViewReady
		summary.Summary = enr.Summary
		summary.Rating = enr.Rating
	}
	view.Summary = summary
	return view
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func SelectionResponse(s db_models.Selection) response_models.Selection {
	return response_models.Selection{
		ID:           s.ID,
		Category:     s.Category,
		Kind:         s.Kind,
		Name:         s.Name,
		Address:      s.Address,
		Phone:        s.Phone,
		ExternalLink: s.ExternalLink,
		PriceRange:   s.PriceRange,
		Memo:         s.Memo,
		IsConfirmed:  s.IsConfirmed,
		CreatedAt:    utils.FormatRFC3339KST(utils.FromUnixAutoKST(s.CreatedAt)),
	}
}

func PlaceResponse(p db_models.Place) response_models.Place {
	return response_models.Place{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Address:      p.Address,
		RoadAddress:  p.RoadAddress,
		Phone:        p.Phone,
		ExternalLink: p.ExternalLink,
		Description:  p.Description,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		IsFeatured:   p.IsFeatured,
		FeaturedSlot: p.FeaturedSlot,
	}
}

func EventResponse(e db_models.PlanEvent) response_models.PlanEvent {
	return response_models.PlanEvent{
		ID:          e.ID,
		Date:        e.Date,
		Kind:        e.Kind,
		Title:       e.Title,
		Body:        e.Body,
		SelectionID: e.SelectionID,
		CreatedAt:   utils.FormatRFC3339KST(utils.FromUnixAutoKST(e.CreatedAt)),
	}
}
