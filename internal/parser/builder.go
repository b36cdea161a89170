package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/dharmasatrya/fareparse/internal/models"
)

type Direction string

const (
	DirectionOnward Direction = "OnwardPricedItinerary"
	DirectionReturn Direction = "ReturnPricedItinerary"
)

const (
	variantsPath  = "./PricedItineraries/Flights"
	legsPath      = "/Flights/Flight"
	fareBasisPath = "./" + string(DirectionOnward) + legsPath + "/" + tagFareBasis
)

type Options struct {
	// Strict rejects documents whose variants disagree on passenger counts
	// or round-trip-ness. Otherwise the last variant decides the options.
	Strict bool
}

// Parse builds a Response from a whole document. Any failing variant
// fails the call.
func Parse(name string, data []byte, opts Options) (*models.Response, error) {
	return ParseReader(name, bytes.NewReader(data), opts)
}

func ParseReader(name string, r io.Reader, opts Options) (*models.Response, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, models.NewFieldError(models.ErrMalformedDocument, "document", err.Error())
	}
	root := doc.Root()
	if root == nil {
		return nil, models.NewFieldError(models.ErrMissingField, name, "document has no root element")
	}

	resp := &models.Response{
		Options:  models.SearchOptions{Filename: name},
		Variants: make([]models.Variant, 0),
	}

	var first *variantResult
	for i, node := range root.FindElements(variantsPath) {
		vr, err := buildVariant(node)
		if err != nil {
			return nil, wrapIndex("variant", i, err)
		}

		if first == nil {
			first = &vr
		} else if opts.Strict && !vr.agrees(*first) {
			return nil, wrapIndex("variant", i, fmt.Errorf("%w: %+v vs %+v", models.ErrVariantMismatch, vr.counts, first.counts))
		}

		resp.Variants = append(resp.Variants, vr.variant)
		resp.Options.RoundTrip = vr.variant.IsRoundTrip()
		resp.Options.Adults = vr.counts.Adults
		resp.Options.Children = vr.counts.Children
		resp.Options.Infants = vr.counts.Infants
	}

	return resp, nil
}

type variantResult struct {
	variant models.Variant
	counts  models.PassengerCounts
}

func (v variantResult) agrees(o variantResult) bool {
	return v.counts == o.counts && v.variant.IsRoundTrip() == o.variant.IsRoundTrip()
}

// buildVariant derives one Variant from a PricedItineraries/Flights node.
func buildVariant(node *etree.Element) (variantResult, error) {
	fb := node.FindElement(fareBasisPath)
	if fb == nil {
		return variantResult{}, models.NewFieldError(models.ErrMissingField, fareBasisPath, "")
	}
	fareBasis := strings.TrimSpace(fb.Text())

	counts, err := DecodeFareCode(fareBasis)
	if err != nil {
		return variantResult{}, err
	}

	onward, err := extractSegments(node.FindElements("./" + string(DirectionOnward) + legsPath))
	if err != nil {
		return variantResult{}, wrapDirection(DirectionOnward, err)
	}
	ret, err := extractSegments(node.FindElements("./" + string(DirectionReturn) + legsPath))
	if err != nil {
		return variantResult{}, wrapDirection(DirectionReturn, err)
	}
	itinerary := models.Itinerary{Onward: onward, Return: ret}

	fares, err := FindFares(node)
	if err != nil {
		return variantResult{}, err
	}

	seconds, err := TotalSeconds(itinerary)
	if err != nil {
		return variantResult{}, err
	}

	return variantResult{
		variant: models.Variant{
			FareBasis:    fareBasis,
			Flight:       itinerary,
			TotalCost:    TotalCost(fares, counts),
			TotalSeconds: seconds,
		},
		counts: counts,
	}, nil
}

func wrapIndex(what string, i int, err error) error {
	return fmt.Errorf("%s %d: %w", what, i+1, err)
}

func wrapDirection(d Direction, err error) error {
	return fmt.Errorf("%s: %w", d, err)
}
