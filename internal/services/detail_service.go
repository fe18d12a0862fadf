package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/pkg/utils"
)

type DetailServiceInterface interface {
	// Detail resolves the map and the enrichment of a candidate concurrently.
	// A newer detail request of the same viewer makes this one fail with
	// utils.ErrStaleSubject.
	Detail(ctx context.Context, viewer string, in request_models.CandidateInput) (*response_models.DetailView, error)
}

type DetailService struct {
	geocoder   GeocodeServiceInterface
	enrichment EnrichmentServiceInterface
	tracker    *ViewTracker
}

func NewDetailService(geocoder GeocodeServiceInterface, enrichment EnrichmentServiceInterface, tracker *ViewTracker) DetailServiceInterface {
	return &DetailService{geocoder: geocoder, enrichment: enrichment, tracker: tracker}
}

func (s *DetailService) Detail(ctx context.Context, viewer string, in request_models.CandidateInput) (*response_models.DetailView, error) {
	candidate, err := CandidateFromInput(in)
	if err != nil {
		return nil, err
	}

	return Track(s.tracker, ctx, viewer, "detail", func(ctx context.Context) (*response_models.DetailView, error) {
		var (
			geo response_models.GeoResult
			enr *response_models.EnrichmentResult
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			geo = s.geocoder.Resolve(gctx, candidate)
			return nil
		})
		g.Go(func() error {
			res, err := s.enrichment.Enrich(gctx, candidate.Name, candidate.Category)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				zap.L().Warn("enrichment failed", zap.String("name", candidate.Name), zap.Error(err))
				res = failedEnrichment(candidate)
			}
			enr = res
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		view := DetailViewOf(candidate, geo, enr)
		return &view, nil
	})
}

// CandidateFromInput rebuilds a candidate sent back by the client.
func CandidateFromInput(in request_models.CandidateInput) (response_models.Candidate, error) {
	c := response_models.Candidate{
		Name:           utils.PlainText(in.Name),
		Category:       in.Category,
		Address:        utils.PlainText(in.Address),
		RoadAddress:    utils.PlainText(in.RoadAddress),
		Phone:          utils.PlainText(in.Phone),
		ExternalLink:   safeLink(in.ExternalLink),
		RawDescription: utils.PlainText(in.RawDescription),
		MapX:           in.MapX,
		MapY:           in.MapY,
	}
	if c.Name == "" {
		return c, utils.ErrInvalidInput
	}
	if !c.Category.Valid() {
		return c, utils.ErrInvalidCategory
	}
	c.ID = utils.CandidateID(c.Name, c.PreferredAddress())
	return c, nil
}

func failedEnrichment(c response_models.Candidate) *response_models.EnrichmentResult {
	return &response_models.EnrichmentResult{
		Name:         c.Name,
		Category:     c.Category,
		Keywords:     []string{},
		Pros:         []string{},
		Cons:         []string{},
		Reviews:      []response_models.Review{},
		ReviewsError: "reviews could not be loaded",
	}
}
