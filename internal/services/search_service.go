package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/internal/repositories"
	"weddy/internal/wizard"
	"weddy/pkg/naver"
	"weddy/pkg/utils"
)

type SearchServiceInterface interface {
	// Search returns candidates in provider order without duplicate names.
	// Failures are *utils.SearchError values; zero hits is an empty list.
	Search(ctx context.Context, groupID uuid.UUID, req request_models.SearchRequest) ([]response_models.Candidate, error)
	// SearchLatest is Search where a newer search of the same viewer cancels
	// this one, which then fails with utils.ErrStaleSubject.
	SearchLatest(ctx context.Context, viewer string, groupID uuid.UUID, req request_models.SearchRequest) ([]response_models.Candidate, error)
	BuildQuery(req request_models.SearchRequest) (string, error)
}

type SearchService struct {
	client     naver.Client
	selections repositories.SelectionRepository
	tracker    *ViewTracker
	display    int
}

func NewSearchService(client naver.Client, selections repositories.SelectionRepository, tracker *ViewTracker, display int) SearchServiceInterface {
	return &SearchService{client: client, selections: selections, tracker: tracker, display: display}
}

// BuildQuery renders "{region} {facet keywords...} {category keyword}".
func (s *SearchService) BuildQuery(req request_models.SearchRequest) (string, error) {
	if req.Category == "" {
		return "", utils.NewSearchError(utils.SearchEmptyQuery, errors.New("category is missing"))
	}
	info, ok := db_models.LookupCategory(req.Category)
	if !ok {
		return "", utils.ErrInvalidCategory
	}
	region := wizard.Normalize(req.Region)
	if region == "" {
		return "", utils.NewSearchError(utils.SearchEmptyQuery, errors.New("region is missing"))
	}

	facets := make(map[string]string, len(req.Facets))
	for k, v := range req.Facets {
		facets[k] = wizard.Normalize(v)
	}

	terms := []string{region}
	terms = append(terms, wizard.QueryTerms(req.Category, facets)...)
	terms = append(terms, info.Keyword)
	return strings.Join(terms, " "), nil
}

func (s *SearchService) Search(ctx context.Context, groupID uuid.UUID, req request_models.SearchRequest) ([]response_models.Candidate, error) {
	query, err := s.BuildQuery(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.LocalSearch(ctx, query, s.display)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, naver.ErrRateLimited) {
			return nil, utils.NewSearchError(utils.SearchRateLimited, err)
		}
		zap.L().Warn("local search failed", zap.String("query", query), zap.Error(err))
		return nil, utils.NewSearchError(utils.SearchProviderUnavailable, err)
	}

	candidates := normalizeLocalItems(req.Category, resp.Items)
	s.markSelected(ctx, groupID, req.Category, candidates)
	return candidates, nil
}

func (s *SearchService) SearchLatest(ctx context.Context, viewer string, groupID uuid.UUID, req request_models.SearchRequest) ([]response_models.Candidate, error) {
	return Track(s.tracker, ctx, viewer, "search", func(ctx context.Context) ([]response_models.Candidate, error) {
		return s.Search(ctx, groupID, req)
	})
}

// normalizeLocalItems strips markup, drops untitled items and keeps the first
// item of every exact name.
func normalizeLocalItems(category db_models.Category, items []naver.LocalItem) []response_models.Candidate {
	out := make([]response_models.Candidate, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		name := utils.PlainText(item.Title)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		c := response_models.Candidate{
			Index:          i,
			Name:           name,
			Category:       category,
			Address:        utils.PlainText(item.Address),
			RoadAddress:    utils.PlainText(item.RoadAddress),
			Phone:          utils.PlainText(item.Telephone),
			ExternalLink:   safeLink(item.Link),
			RawDescription: utils.PlainText(item.Description),
			MapX:           strings.TrimSpace(item.MapX),
			MapY:           strings.TrimSpace(item.MapY),
		}
		c.ID = utils.CandidateID(c.Name, c.PreferredAddress())
		out = append(out, c)
	}
	return out
}

func (s *SearchService) markSelected(ctx context.Context, groupID uuid.UUID, category db_models.Category, candidates []response_models.Candidate) {
	if groupID == uuid.Nil || len(candidates) == 0 || s.selections == nil {
		return
	}
	sels, err := s.selections.ListByGroup(ctx, groupID)
	if err != nil {
		zap.L().Warn("list selections for search marking", zap.Error(err))
		return
	}
	chosen := make(map[string]struct{}, len(sels))
	for _, sel := range sels {
		if sel.Category == category {
			chosen[sel.Name] = struct{}{}
		}
	}
	for i := range candidates {
		_, candidates[i].AlreadySelected = chosen[candidates[i].Name]
	}
}

// safeLink keeps absolute http(s) links only.
func safeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}
