// Package service implements the three queries every front end offers:
// list variants, pick the best ones, and compare two responses' options.
package service

import (
	"context"
	"time"

	"github.com/dharmasatrya/fareparse/internal/aggregator"
	"github.com/dharmasatrya/fareparse/internal/compare"
	"github.com/dharmasatrya/fareparse/internal/filter"
	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/ranking"
	"github.com/dharmasatrya/fareparse/internal/sources"
)

type Service struct {
	loader       *aggregator.Loader
	weights      ranking.Weights
	fetchTimeout time.Duration
}

func New(loader *aggregator.Loader, weights ranking.Weights, fetchTimeout time.Duration) *Service {
	return &Service{
		loader:       loader,
		weights:      weights,
		fetchTimeout: fetchTimeout,
	}
}

func (s *Service) Resolve(name string) sources.Source {
	return sources.Resolve(name, s.fetchTimeout)
}

// Weights falls back to the configured weights when both given ones are zero.
func (s *Service) Weights(timeWeight, costWeight float64) ranking.Weights {
	if timeWeight == 0 && costWeight == 0 {
		return s.weights
	}
	return ranking.Weights{Time: timeWeight, Cost: costWeight}
}

func (s *Service) Variants(ctx context.Context, src sources.Source, q models.VariantQuery) (*models.VariantsResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	resp, err := s.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	variants, err := filter.Apply(resp.Variants, &q.VariantFilters, q.SortBy, q.SortOrder, s.Weights(q.TimeWeight, q.CostWeight))
	if err != nil {
		return nil, sources.NewSourceError(src.Name(), err)
	}

	return &models.VariantsResponse{
		Options: resp.Options,
		Metadata: models.ListMetadata{
			TotalVariants:    len(resp.Variants),
			ReturnedVariants: len(variants),
			ElapsedMs:        time.Since(start).Milliseconds(),
		},
		Variants: variants,
	}, nil
}

func (s *Service) Best(ctx context.Context, src sources.Source, w ranking.Weights) (*models.BestResponse, error) {
	resp, err := s.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	best, err := ranking.Best(resp.Variants, w)
	if err != nil {
		return nil, sources.NewSourceError(src.Name(), err)
	}

	return &models.BestResponse{
		Options:    resp.Options,
		TimeWeight: w.Time,
		CostWeight: w.Cost,
		Best:       best,
	}, nil
}

func (s *Service) Compare(ctx context.Context, left, right sources.Source) (*models.CompareResponse, error) {
	responses, err := s.loader.LoadAll(ctx, left, right)
	if err != nil {
		return nil, err
	}

	diff, err := compare.Options(responses[0], responses[1])
	if err != nil {
		return nil, err
	}

	return &models.CompareResponse{
		Left:  left.Name(),
		Right: right.Name(),
		Diff:  diff,
	}, nil
}
