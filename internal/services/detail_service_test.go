package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/pkg/utils"
)

type stubGeocode struct {
	resolve func(ctx context.Context, c response_models.Candidate) response_models.GeoResult
}

func (s stubGeocode) Resolve(ctx context.Context, c response_models.Candidate) response_models.GeoResult {
	return s.resolve(ctx, c)
}

type stubEnrichment struct {
	enrich func(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error)
}

func (s stubEnrichment) Enrich(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error) {
	return s.enrich(ctx, name, category)
}

func studioInput(name string) request_models.CandidateInput {
	return request_models.CandidateInput{Name: name, Category: db_models.CategoryStudio, Address: "서울 강남구"}
}

func TestDetailRunsMapAndEnrichmentConcurrently(t *testing.T) {
	geoStarted := make(chan struct{})
	enrStarted := make(chan struct{})

	geo := stubGeocode{resolve: func(ctx context.Context, c response_models.Candidate) response_models.GeoResult {
		close(geoStarted)
		select {
		case <-enrStarted:
		case <-time.After(2 * time.Second):
			t.Error("enrichment did not start while geocoding")
		}
		return response_models.GeoResult{Tier: response_models.GeoTierUnresolved, ExternalMapURL: "https://map.naver.com/p/search/x"}
	}}
	enr := stubEnrichment{enrich: func(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error) {
		close(enrStarted)
		<-geoStarted
		return &response_models.EnrichmentResult{Name: name, Category: category, Summary: "좋아요", Reviews: []response_models.Review{{Title: "후기"}}}, nil
	}}

	view, err := NewDetailService(geo, enr, NewViewTracker()).Detail(context.Background(), "v1", studioInput("아뜰리에"))
	require.NoError(t, err)

	assert.False(t, view.Map.Embedded)
	assert.NotEmpty(t, view.Map.Message)
	assert.Equal(t, response_models.ViewReady, view.Reviews.State)
	assert.Equal(t, response_models.ViewReady, view.Summary.State)
	assert.Equal(t, "좋아요", view.Summary.Summary)
}

func TestDetailEnrichmentErrorDegradesToErrorRegion(t *testing.T) {
	geo := stubGeocode{resolve: func(ctx context.Context, c response_models.Candidate) response_models.GeoResult {
		return response_models.GeoResult{Tier: response_models.GeoTierNative, Coordinate: &response_models.Coordinate{Lat: 37.5, Lng: 127}}
	}}
	enr := stubEnrichment{enrich: func(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error) {
		return nil, errors.New("boom")
	}}

	view, err := NewDetailService(geo, enr, nil).Detail(context.Background(), "", studioInput("아뜰리에"))
	require.NoError(t, err)
	assert.True(t, view.Map.Embedded)
	assert.Equal(t, response_models.ViewError, view.Reviews.State)
	assert.Equal(t, response_models.ViewEmpty, view.Summary.State)
}

func TestDetailRejectsInvalidCandidate(t *testing.T) {
	svc := NewDetailService(stubGeocode{}, stubEnrichment{}, nil)

	_, err := svc.Detail(context.Background(), "", request_models.CandidateInput{Name: "<b></b>", Category: db_models.CategoryStudio})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Detail(context.Background(), "", request_models.CandidateInput{Name: "A", Category: "florist"})
	assert.ErrorIs(t, err, utils.ErrInvalidCategory)
}

func TestDetailSupersededByNewerSelection(t *testing.T) {
	started := make(chan struct{})
	geo := stubGeocode{resolve: func(ctx context.Context, c response_models.Candidate) response_models.GeoResult {
		return response_models.GeoResult{Tier: response_models.GeoTierUnresolved}
	}}
	enr := stubEnrichment{enrich: func(ctx context.Context, name string, category db_models.Category) (*response_models.EnrichmentResult, error) {
		if name == "A" {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return &response_models.EnrichmentResult{Name: name, Category: category}, nil
	}}

	svc := NewDetailService(geo, enr, NewViewTracker())

	stale := make(chan error, 1)
	go func() {
		_, err := svc.Detail(context.Background(), "v1", studioInput("A"))
		stale <- err
	}()
	<-started

	view, err := svc.Detail(context.Background(), "v1", studioInput("B"))
	require.NoError(t, err)
	assert.Equal(t, "B", view.Candidate.Name)

	select {
	case err := <-stale:
		assert.ErrorIs(t, err, utils.ErrStaleSubject)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded detail did not return")
	}
}
