package parser

import (
	"github.com/beevik/etree"

	"github.com/dharmasatrya/fareparse/internal/models"
)

const (
	tagCarrier   = "Carrier"
	tagFareBasis = "FareBasis"
	attrID       = "id"
)

// ExtractSegment copies every child of a Flight leg into an ordered
// attribute map, keyed by tag, with the element text as value. FareBasis is
// skipped; every leg repeats it and it is read once per variant instead.
func ExtractSegment(leg *etree.Element) (models.FlightSegment, error) {
	carrier := leg.SelectElement(tagCarrier)
	if carrier == nil {
		return models.FlightSegment{}, models.NewFieldError(models.ErrMissingField, leg.Tag+"/"+tagCarrier, "")
	}
	id := carrier.SelectAttr(attrID)
	if id == nil {
		return models.FlightSegment{}, models.NewFieldError(models.ErrMissingField, leg.Tag+"/"+tagCarrier+"/@"+attrID, "")
	}

	attrs := models.NewAttributes()
	for _, child := range leg.ChildElements() {
		if child.Tag == tagFareBasis {
			continue
		}
		attrs.Set(child.Tag, child.Text())
	}

	return models.FlightSegment{
		CarrierID:  id.Value,
		Attributes: attrs,
	}, nil
}

func extractSegments(legs []*etree.Element) ([]models.FlightSegment, error) {
	segments := make([]models.FlightSegment, 0, len(legs))
	for i, leg := range legs {
		s, err := ExtractSegment(leg)
		if err != nil {
			return nil, wrapIndex("flight", i, err)
		}
		segments = append(segments, s)
	}
	return segments, nil
}
