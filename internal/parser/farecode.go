package parser

import (
	"strconv"
	"strings"

	"github.com/dharmasatrya/fareparse/internal/models"
)

// PassengerMarker separates the fare rule from the passenger suffix in a
// fare basis code, e.g. RT1Y__A2_1_0.
const PassengerMarker = "__A"

// DecodeFareCode recovers adult, child and infant counts from the
// underscore-separated suffix after PassengerMarker.
func DecodeFareCode(fareBasis string) (models.PassengerCounts, error) {
	code := strings.TrimSpace(fareBasis)

	_, suffix, found := strings.Cut(code, PassengerMarker)
	if !found {
		return models.PassengerCounts{}, models.NewFieldError(models.ErrMalformedFareCode, code, "no "+PassengerMarker+" marker")
	}

	tokens := strings.Split(suffix, "_")
	if len(tokens) != 3 {
		return models.PassengerCounts{}, models.NewFieldError(models.ErrMalformedFareCode, code, "expected adults_children_infants")
	}

	counts := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.ParseUint(tok, 10, 31)
		if err != nil {
			return models.PassengerCounts{}, models.NewFieldError(models.ErrMalformedFareCode, code, "count "+strconv.Quote(tok)+" is not a non-negative integer")
		}
		counts[i] = int(n)
	}

	return models.PassengerCounts{
		Adults:   counts[0],
		Children: counts[1],
		Infants:  counts[2],
	}, nil
}
