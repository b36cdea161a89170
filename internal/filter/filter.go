package filter

import (
	"sort"
	"strings"

	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/ranking"
)

// Apply filters then stably sorts a copy of variants. Sorting by score uses
// the blended ranking over the filtered set.
func Apply(variants []models.Variant, filters *models.VariantFilters, sortBy, sortOrder string, w ranking.Weights) ([]models.Variant, error) {
	filtered := applyFilters(variants, filters)
	return applySort(filtered, sortBy, sortOrder, w)
}

func applyFilters(variants []models.Variant, filters *models.VariantFilters) []models.Variant {
	result := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		if filters == nil || matchesFilters(v, filters) {
			result = append(result, v)
		}
	}
	return result
}

func matchesFilters(v models.Variant, filters *models.VariantFilters) bool {
	if filters.MaxCost != nil && v.TotalCost > *filters.MaxCost {
		return false
	}

	if filters.MaxSeconds != nil && v.TotalSeconds > *filters.MaxSeconds {
		return false
	}

	if filters.RoundTrip != nil && v.IsRoundTrip() != *filters.RoundTrip {
		return false
	}

	if filters.Carrier != "" {
		found := false
		for _, c := range v.Carriers() {
			if strings.EqualFold(c, filters.Carrier) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func applySort(variants []models.Variant, sortBy, sortOrder string, w ranking.Weights) ([]models.Variant, error) {
	if len(variants) == 0 {
		return variants, nil
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	var keys []float64
	switch strings.ToLower(sortBy) {
	case models.SortCost:
		keys = make([]float64, len(variants))
		for i, v := range variants {
			keys[i] = v.TotalCost
		}

	case models.SortDuration:
		keys = make([]float64, len(variants))
		for i, v := range variants {
			keys[i] = float64(v.TotalSeconds)
		}

	case models.SortScore:
		scores, err := ranking.CalculateScores(variants, w)
		if err != nil {
			return nil, err
		}
		keys = scores

	default:
		// Document order
		return variants, nil
	}

	idx := make([]int, len(variants))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		if ascending {
			return keys[idx[i]] < keys[idx[j]]
		}
		return keys[idx[i]] > keys[idx[j]]
	})

	sorted := make([]models.Variant, len(variants))
	for i, k := range idx {
		sorted[i] = variants[k]
	}
	return sorted, nil
}
