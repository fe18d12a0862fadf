package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"weddy/internal/models/db_models"
	"weddy/internal/models/response_models"
	"weddy/internal/repositories"
	"weddy/internal/wizard"
	"weddy/pkg/memcache"
	"weddy/pkg/naver"
	"weddy/pkg/summarizer"
	"weddy/pkg/utils"
)

// ReviewQualifier narrows blog search to wedding reviews of the vendor.
const ReviewQualifier = "웨딩 후기"

type EnrichmentServiceInterface interface {
	// Enrich is best effort: step failures are reported on the result.
	// It only fails for invalid input or a cancelled context.
	Enrich(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error)
}

type EnrichmentConfig struct {
	ReviewDisplay  int
	CacheTTL       time.Duration
	SummaryTimeout time.Duration
}

type EnrichmentService struct {
	reviews    naver.Client
	summarizer summarizer.Summarizer
	store      repositories.EnrichmentCacheRepository
	memory     memcache.Store[*response_models.EnrichmentResult]
	flight     singleflight.Group
	cfg        EnrichmentConfig
}

// NewEnrichmentService accepts a nil summarizer, in which case every
// non-empty review set reports a summary error.
func NewEnrichmentService(
	reviews naver.Client,
	sum summarizer.Summarizer,
	store repositories.EnrichmentCacheRepository,
	cfg EnrichmentConfig,
) EnrichmentServiceInterface {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 6 * time.Hour
	}
	if cfg.SummaryTimeout <= 0 {
		cfg.SummaryTimeout = 30 * time.Second
	}
	if cfg.ReviewDisplay <= 0 {
		cfg.ReviewDisplay = 10
	}
	return &EnrichmentService{
		reviews:    reviews,
		summarizer: sum,
		store:      store,
		memory:     memcache.New[*response_models.EnrichmentResult](cfg.CacheTTL, 10*time.Minute),
		cfg:        cfg,
	}
}

func (s *EnrichmentService) Enrich(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error) {
	name = wizard.Normalize(name)
	if name == "" {
		return nil, eris.Wrap(utils.ErrInvalidInput, "enrichment: name is required")
	}
	if !category.Valid() {
		return nil, utils.ErrInvalidCategory
	}

	key := string(category) + "\x00" + name
	if hit, ok := s.memory.Get(key); ok {
		return cachedCopy(hit), nil
	}

	// The shared computation outlives any single caller so a superseded
	// viewer does not fail the others waiting on it.
	ch := s.flight.DoChan(key, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), key, name, category), nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		out := *res.Val.(*response_models.EnrichmentResult)
		return &out, nil
	}
}

func (s *EnrichmentService) load(ctx context.Context, key, name string, category db_models.Category) *response_models.EnrichmentResult {
	if hit := s.fromStore(ctx, name, category); hit != nil {
		s.memory.Set(key, hit)
		return cachedCopy(hit)
	}

	result := s.compute(ctx, name, category)
	if result.Complete() {
		s.memory.Set(key, result)
		s.toStore(ctx, result)
	}
	return result
}

func (s *EnrichmentService) compute(ctx context.Context, name string, category db_models.Category) *response_models.EnrichmentResult {
	result := &response_models.EnrichmentResult{
		Name:      name,
		Category:  category,
		Keywords:  []string{},
		Pros:      []string{},
		Cons:      []string{},
		Reviews:   []response_models.Review{},
		FetchedAt: time.Now().UTC(),
	}

	reviews, err := s.fetchReviews(ctx, name)
	if err != nil {
		zap.L().Info("review fetch failed", zap.String("name", name), zap.Error(err))
		result.ReviewsError = reviewErrorMessage(err)
		return result
	}
	result.Reviews = reviews
	if len(reviews) == 0 {
		return result
	}

	if s.summarizer == nil {
		result.SummaryError = "summary is not available"
		return result
	}

	texts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		texts = append(texts, strings.TrimSpace(r.Title+" "+r.Snippet))
	}

	sctx, cancel := context.WithTimeout(ctx, s.cfg.SummaryTimeout)
	defer cancel()
	sum, err := s.summarizer.Summarize(sctx, summarizer.Input{Name: name, Category: string(category), Reviews: texts})
	if err != nil {
		zap.L().Info("review summary failed", zap.String("name", name), zap.String("provider", s.summarizer.Provider()), zap.Error(err))
		result.SummaryError = "summary could not be generated"
		return result
	}

	result.Summary = sum.Summary
	result.Keywords = append(result.Keywords, sum.Keywords...)
	if len(result.Keywords) > response_models.MaxKeywords {
		result.Keywords = result.Keywords[:response_models.MaxKeywords]
	}
	result.Pros = append(result.Pros, sum.Pros...)
	result.Cons = append(result.Cons, sum.Cons...)
	result.Rating = sum.Rating
	return result
}

func (s *EnrichmentService) fetchReviews(ctx context.Context, name string) ([]response_models.Review, error) {
	if s.reviews == nil {
		return nil, eris.New("enrichment: review source not configured")
	}
	resp, err := s.reviews.BlogSearch(ctx, name+" "+ReviewQualifier, s.cfg.ReviewDisplay)
	if err != nil {
		return nil, err
	}

	reviews := make([]response_models.Review, 0, len(resp.Items))
	for _, item := range resp.Items {
		title := utils.PlainText(item.Title)
		snippet := utils.PlainText(item.Description)
		if title == "" && snippet == "" {
			continue
		}
		r := response_models.Review{
			Title:      title,
			Snippet:    snippet,
			SourceLink: safeLink(item.Link),
			Author:     utils.PlainText(item.BloggerName),
		}
		if d := utils.ParseCompactDateKST(item.PostDate); !d.IsZero() {
			r.PublishedDate = &d
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func reviewErrorMessage(err error) string {
	if errors.Is(err, naver.ErrRateLimited) {
		return "reviews are temporarily rate limited"
	}
	return "reviews could not be loaded"
}

func (s *EnrichmentService) fromStore(ctx context.Context, name string, category db_models.Category) *response_models.EnrichmentResult {
	if s.store == nil {
		return nil
	}
	entry, err := s.store.Get(ctx, name, category)
	if err != nil {
		zap.L().Warn("enrichment cache read", zap.String("name", name), zap.Error(err))
		return nil
	}
	if entry == nil {
		return nil
	}
	var result response_models.EnrichmentResult
	if err := json.Unmarshal(entry.Payload, &result); err != nil {
		zap.L().Warn("enrichment cache decode", zap.String("name", name), zap.Error(err))
		return nil
	}
	return &result
}

func (s *EnrichmentService) toStore(ctx context.Context, result *response_models.EnrichmentResult) {
	if s.store == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		zap.L().Warn("enrichment cache encode", zap.Error(err))
		return
	}
	entry := &db_models.EnrichmentCache{
		Name:      result.Name,
		Category:  result.Category,
		Payload:   datatypes.JSON(payload),
		ExpiresAt: time.Now().UTC().Add(s.cfg.CacheTTL),
	}
	if err := s.store.Put(ctx, entry); err != nil {
		zap.L().Warn("enrichment cache write", zap.String("name", result.Name), zap.Error(err))
	}
}

func cachedCopy(r *response_models.EnrichmentResult) *response_models.EnrichmentResult {
	out := *r
	out.Cached = true
	return &out
}
