package main

import (
	"context"
	"fmt"
	"log"

	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/service"
)

const (
	ModeAll     = "all"
	ModeBest    = "best"
	ModeCompare = "compare"
)

// Event selects a query. Other is the second source for compare.
type Event struct {
	Mode       string  `json:"mode"`
	Source     string  `json:"source"`
	Other      string  `json:"other,omitempty"`
	SortBy     string  `json:"sort_by,omitempty"`
	TimeWeight float64 `json:"time_weight,omitempty"`
	CostWeight float64 `json:"cost_weight,omitempty"`
}

func HandleRequest(ctx context.Context, event Event) (interface{}, error) {
	return handle(ctx, svc, event)
}

func handle(ctx context.Context, s *service.Service, event Event) (interface{}, error) {
	log.Printf("Handling %s request for %s", event.Mode, event.Source)

	if event.Source == "" {
		return nil, models.ErrMissingSource
	}

	switch event.Mode {
	case ModeAll, "":
		return s.Variants(ctx, s.Resolve(event.Source), models.VariantQuery{
			SortBy:     event.SortBy,
			TimeWeight: event.TimeWeight,
			CostWeight: event.CostWeight,
		})
	case ModeBest:
		return s.Best(ctx, s.Resolve(event.Source), s.Weights(event.TimeWeight, event.CostWeight))
	case ModeCompare:
		if event.Other == "" {
			return nil, models.ErrMissingSource
		}
		return s.Compare(ctx, s.Resolve(event.Source), s.Resolve(event.Other))
	default:
		return nil, fmt.Errorf("unknown mode %q", event.Mode)
	}
}
