package models

type VariantFilters struct {
	MaxCost    *float64 `json:"max_cost,omitempty"`
	MaxSeconds *int64   `json:"max_seconds,omitempty"`
	Carrier    string   `json:"carrier,omitempty" query:"carrier"`
	RoundTrip  *bool    `json:"roundtrip,omitempty"`
}

// VariantQuery narrows and orders a response's variants for listing.
type VariantQuery struct {
	Source     string  `json:"source" query:"source"`
	SortBy     string  `json:"sort_by,omitempty" query:"sort_by"`
	SortOrder  string  `json:"sort_order,omitempty" query:"sort_order"`
	TimeWeight float64 `json:"time_weight,omitempty" query:"time_weight"`
	CostWeight float64 `json:"cost_weight,omitempty" query:"cost_weight"`
	VariantFilters
}

const (
	SortDocument = "document"
	SortCost     = "cost"
	SortDuration = "duration"
	SortScore    = "score"
)

func (q *VariantQuery) Validate() error {
	if q.SortBy == "" {
		q.SortBy = SortDocument
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}
	switch q.SortBy {
	case SortDocument, SortCost, SortDuration, SortScore:
	default:
		return ErrUnknownSort
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		return ErrUnknownSortOrder
	}
	if q.TimeWeight < 0 || q.CostWeight < 0 {
		return ErrNegativeWeight
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingSource    ValidationError = "source is required"
	ErrUnknownSort      ValidationError = "sort_by must be one of document, cost, duration, score"
	ErrUnknownSortOrder ValidationError = "sort_order must be asc or desc"
	ErrNegativeWeight   ValidationError = "weights must not be negative"
)
