package ranking

import (
	"sort"

	"github.com/dharmasatrya/fareparse/internal/models"
)

const (
	DefaultTimeWeight = 0.5
	DefaultCostWeight = 0.5
)

type Weights struct {
	Time float64 `json:"time_weight"`
	Cost float64 `json:"cost_weight"`
}

func DefaultWeights() Weights {
	return Weights{Time: DefaultTimeWeight, Cost: DefaultCostWeight}
}

func byCost(v models.Variant) float64     { return v.TotalCost }
func byDuration(v models.Variant) float64 { return float64(v.TotalSeconds) }

// sortedBy returns a stably sorted copy; the input keeps its order.
func sortedBy(variants []models.Variant, key func(models.Variant) float64) ([]models.Variant, error) {
	if len(variants) == 0 {
		return nil, models.ErrEmptyInput
	}
	sorted := make([]models.Variant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted, nil
}

func Cheapest(variants []models.Variant) (models.Variant, error) {
	sorted, err := sortedBy(variants, byCost)
	if err != nil {
		return models.Variant{}, err
	}
	return sorted[0], nil
}

func MostExpensive(variants []models.Variant) (models.Variant, error) {
	sorted, err := sortedBy(variants, byCost)
	if err != nil {
		return models.Variant{}, err
	}
	return sorted[len(sorted)-1], nil
}

func Fastest(variants []models.Variant) (models.Variant, error) {
	sorted, err := sortedBy(variants, byDuration)
	if err != nil {
		return models.Variant{}, err
	}
	return sorted[0], nil
}

func Slowest(variants []models.Variant) (models.Variant, error) {
	sorted, err := sortedBy(variants, byDuration)
	if err != nil {
		return models.Variant{}, err
	}
	return sorted[len(sorted)-1], nil
}

// CalculateScores returns each variant's blended score, in input order:
//
//	score = duration/sum(durations)*w.Time + cost/sum(costs)*w.Cost
//
// Both sums are taken over the given collection. Lower is better.
func CalculateScores(variants []models.Variant, w Weights) ([]float64, error) {
	if len(variants) == 0 {
		return nil, models.ErrEmptyInput
	}

	costSum, durationSum := 0.0, 0.0
	for _, v := range variants {
		costSum += byCost(v)
		durationSum += byDuration(v)
	}
	if costSum == 0 || durationSum == 0 {
		return nil, models.ErrDivideByZero
	}

	scores := make([]float64, len(variants))
	for i, v := range variants {
		scores[i] = byDuration(v)/durationSum*w.Time + byCost(v)/costSum*w.Cost
	}
	return scores, nil
}

// Optimal returns the lowest-scoring variant; ties go to the earliest.
func Optimal(variants []models.Variant, w Weights) (models.Variant, error) {
	scores, err := CalculateScores(variants, w)
	if err != nil {
		return models.Variant{}, err
	}

	idx := make([]int, len(variants))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] < scores[idx[j]]
	})
	return variants[idx[0]], nil
}

func Best(variants []models.Variant, w Weights) (models.BestVariants, error) {
	var best models.BestVariants
	var err error

	if best.Cheapest, err = Cheapest(variants); err != nil {
		return models.BestVariants{}, err
	}
	if best.MostExpensive, err = MostExpensive(variants); err != nil {
		return models.BestVariants{}, err
	}
	if best.Fastest, err = Fastest(variants); err != nil {
		return models.BestVariants{}, err
	}
	if best.Slowest, err = Slowest(variants); err != nil {
		return models.BestVariants{}, err
	}
	if best.Optimal, err = Optimal(variants, w); err != nil {
		return models.BestVariants{}, err
	}
	return best, nil
}
