package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/dharmasatrya/fareparse/internal/models"
)

type PassengerType string

const (
	SingleAdult  PassengerType = "SingleAdult"
	SingleChild  PassengerType = "SingleChild"
	SingleInfant PassengerType = "SingleInfant"
)

const (
	tagServiceCharges = "ServiceCharges"
	attrType          = "type"
	attrChargeType    = "ChargeType"
	chargeTotalAmount = "TotalAmount"
)

// FindFare returns the per-passenger TotalAmount charge for the given type
// anywhere below the variant. A missing record is a zero fare.
func FindFare(variant *etree.Element, pt PassengerType) (float64, error) {
	for _, charge := range variant.FindElements(".//" + tagServiceCharges) {
		if charge.SelectAttrValue(attrType, "") != string(pt) {
			continue
		}
		if charge.SelectAttrValue(attrChargeType, "") != chargeTotalAmount {
			continue
		}

		text := strings.TrimSpace(charge.Text())
		amount, err := strconv.ParseFloat(text, 64)
		if err != nil || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return 0, models.NewFieldError(models.ErrMalformedCharge, tagServiceCharges+"[@type='"+string(pt)+"']", strconv.Quote(text))
		}
		return amount, nil
	}
	return 0, nil
}

// Fares holds the per-unit TotalAmount for each passenger type.
type Fares struct {
	Adult  float64
	Child  float64
	Infant float64
}

func FindFares(variant *etree.Element) (Fares, error) {
	var f Fares
	var err error
	if f.Adult, err = FindFare(variant, SingleAdult); err != nil {
		return Fares{}, err
	}
	if f.Child, err = FindFare(variant, SingleChild); err != nil {
		return Fares{}, err
	}
	if f.Infant, err = FindFare(variant, SingleInfant); err != nil {
		return Fares{}, err
	}
	return f, nil
}

// TotalCost weights each fare by its passenger count. Every product is
// rounded to whole cents before summing so the total carries no float drift.
func TotalCost(f Fares, counts models.PassengerCounts) float64 {
	cents := toCents(f.Adult*float64(counts.Adults)) +
		toCents(f.Child*float64(counts.Children)) +
		toCents(f.Infant*float64(counts.Infants))
	return float64(cents) / 100
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
