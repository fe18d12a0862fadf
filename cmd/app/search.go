package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/services"
	"weddy/pkg/naver"
	"weddy/pkg/summarizer"
)

var (
	searchCategory string
	searchRegion   string
	searchFacets   map[string]string
	searchEnrich   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one search from the terminal and print the search view as JSON",
	Example: `  weddy search --category dress --region 서울 --facet price=저가
  weddy search --category hall --region 부산 --enrich`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
		defer cancel()

		client := naver.NewClient(cfg.Naver.ClientID, cfg.Naver.ClientSecret,
			naver.WithBaseURL(cfg.Naver.BaseURL),
			naver.WithTimeout(time.Duration(cfg.Naver.TimeoutSecs)*time.Second),
		)
		search := services.NewSearchService(client, nil, nil, cfg.Naver.Display)

		req := request_models.SearchRequest{
			Category: db_models.Category(searchCategory),
			Region:   searchRegion,
			Facets:   searchFacets,
		}
		query, _ := search.BuildQuery(req)
		candidates, err := search.Search(ctx, uuid.Nil, req)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(services.SearchViewOf(req, query, candidates, err)); err != nil {
			return err
		}
		if err != nil || !searchEnrich || len(candidates) == 0 {
			return err
		}

		var sum summarizer.Summarizer
		if model := cfg.SummarizerModel(); model.Key != "" {
			sum, err = summarizer.New(ctx, summarizer.Config{Provider: cfg.Summarizer.Provider, Key: model.Key, Model: model.Model})
			if err != nil {
				return err
			}
		}
		enrichment := services.NewEnrichmentService(client, sum, nil, services.EnrichmentConfig{
			ReviewDisplay:  cfg.Naver.ReviewDisplay,
			SummaryTimeout: time.Duration(cfg.Summarizer.TimeoutSecs) * time.Second,
		})
		result, err := enrichment.Enrich(ctx, candidates[0].Name, candidates[0].Category)
		if err != nil {
			return err
		}
		return enc.Encode(result)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "category to search, e.g. hall, dress, photo_spot")
	searchCmd.Flags().StringVar(&searchRegion, "region", "", "region, e.g. 서울")
	searchCmd.Flags().StringToStringVar(&searchFacets, "facet", nil, "facet answers as key=value")
	searchCmd.Flags().BoolVar(&searchEnrich, "enrich", false, "also fetch reviews and a summary for the first hit")
	_ = searchCmd.MarkFlagRequired("category")
}
