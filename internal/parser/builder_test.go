package parser

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/magiconair/properties/assert"

	"github.com/dharmasatrya/fareparse/internal/models"
)

func TestParseSampleDocument(t *testing.T) {
	resp, err := Parse("RS_Via-3.xml", []byte(sampleDocument), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(resp.Variants))
	}

	first := resp.Variants[0]
	if !strings.HasSuffix(first.FareBasis, "__A2_0_0") || strings.ContainsAny(first.FareBasis, " \n") {
		t.Fatalf("fare basis not trimmed: %q", first.FareBasis)
	}
	assert.Equal(t, len(first.Flight.Onward), 2)
	assert.Equal(t, len(first.Flight.Return), 0)
	assert.Equal(t, first.TotalCost, 1093.2)
	// 00:05 -> 19:35 same day
	assert.Equal(t, first.TotalSeconds, int64(70200))

	seg := first.Flight.Onward[0]
	assert.Equal(t, seg.CarrierID, "AI")
	if _, ok := seg.Get("FareBasis"); ok {
		t.Fatal("FareBasis must not be copied into segment attributes")
	}
	carrierText, _ := seg.Get("Carrier")
	assert.Equal(t, carrierText, "AirIndia")
	flightNumber, _ := seg.Get("FlightNumber")
	assert.Equal(t, flightNumber, "996")
	assert.Equal(t, seg.Attributes.Keys(), []string{
		"Carrier", "FlightNumber", "Source", "Destination", "DepartureTimeStamp",
		"ArrivalTimeStamp", "Class", "NumberOfStops", "WarningText", "TicketType",
	})

	second := resp.Variants[1]
	assert.Equal(t, second.FareBasis, "RT1Y__A2_0_0")
	assert.Equal(t, len(second.Flight.Return), 1)
	// child fare present but zero children in the fare code
	assert.Equal(t, second.TotalCost, 1600.2)
	// 03:40 -> 12:50 plus 14:50 -> 18:15
	assert.Equal(t, second.TotalSeconds, int64(33000+12300))

	assert.Equal(t, resp.Options, models.SearchOptions{
		Filename:  "RS_Via-3.xml",
		RoundTrip: true,
		Adults:    2,
	})
}

func TestParseOneWayExample(t *testing.T) {
	doc := `<Root><PricedItineraries><Flights>
  <OnwardPricedItinerary><Flights><Flight>
    <Carrier id="SU"/>
    <DepartureTimeStamp>2024-03-15T0800</DepartureTimeStamp>
    <ArrivalTimeStamp>2024-03-15T1130</ArrivalTimeStamp>
    <FareBasis>RT1Y__A2_1_0</FareBasis>
  </Flight></Flights></OnwardPricedItinerary>
  <Pricing>
    <ServiceCharges type="SingleAdult" ChargeType="TotalAmount">150.00</ServiceCharges>
    <ServiceCharges type="SingleChild" ChargeType="TotalAmount">75.00</ServiceCharges>
  </Pricing>
</Flights></PricedItineraries></Root>`

	resp, err := Parse("one-way.xml", []byte(doc), Options{Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := resp.Variants[0]
	assert.Equal(t, v.TotalCost, 375.0)
	assert.Equal(t, v.TotalSeconds, int64(12600))
	assert.Equal(t, resp.Options.RoundTrip, false)
	assert.Equal(t, resp.Options.Adults, 2)
	assert.Equal(t, resp.Options.Children, 1)
	assert.Equal(t, resp.Options.Infants, 0)
}

func TestParseLastVariantWins(t *testing.T) {
	doc := `<Root><PricedItineraries>` +
		variantXML("A__A1_0_0", true) +
		variantXML("B__A3_1_1", false) +
		`</PricedItineraries></Root>`

	resp, err := Parse("mixed.xml", []byte(doc), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, resp.Options.Adults, 3)
	assert.Equal(t, resp.Options.Children, 1)
	assert.Equal(t, resp.Options.RoundTrip, false)
	assert.Equal(t, resp.Variants[0].FareBasis, "A__A1_0_0")
	assert.Equal(t, resp.Variants[1].FareBasis, "B__A3_1_1")

	_, err = Parse("mixed.xml", []byte(doc), Options{Strict: true})
	if !errors.Is(err, models.ErrVariantMismatch) {
		t.Fatalf("expected ErrVariantMismatch in strict mode, got %v", err)
	}
}

func TestParseFailsAtomically(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		want    error
	}{
		{"bad fare code", variantXML("NOCOUNTS", false), models.ErrMalformedFareCode},
		{
			"missing carrier",
			`<Flights><OnwardPricedItinerary><Flights><Flight><FareBasis>X__A1_0_0</FareBasis></Flight></Flights></OnwardPricedItinerary></Flights>`,
			models.ErrMissingField,
		},
		{
			"missing carrier id",
			`<Flights><OnwardPricedItinerary><Flights><Flight><Carrier/><FareBasis>X__A1_0_0</FareBasis></Flight></Flights></OnwardPricedItinerary></Flights>`,
			models.ErrMissingField,
		},
		{"no onward legs", `<Flights><Pricing/></Flights>`, models.ErrMissingField},
		{
			"bad timestamp",
			`<Flights><OnwardPricedItinerary><Flights><Flight><Carrier id="X"/><DepartureTimeStamp>soon</DepartureTimeStamp><ArrivalTimeStamp>2024-01-01T1000</ArrivalTimeStamp><FareBasis>X__A1_0_0</FareBasis></Flight></Flights></OnwardPricedItinerary></Flights>`,
			models.ErrMalformedTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<Root><PricedItineraries>` + variantXML("OK__A1_0_0", false) + tt.variant + `</PricedItineraries></Root>`
			resp, err := Parse("bad.xml", []byte(doc), Options{})
			if resp != nil {
				t.Fatal("expected no partial response")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !strings.Contains(err.Error(), "variant 2") {
				t.Fatalf("expected error to name variant 2, got %q", err.Error())
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	resp, err := Parse("empty.xml", []byte(`<Root><PricedItineraries/></Root>`), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, len(resp.Variants), 0)
	assert.Equal(t, resp.Options.Filename, "empty.xml")

	_, err = Parse("broken.xml", []byte(`<Root><Flights a=1></Flights></Root>`), Options{})
	if !errors.Is(err, models.ErrMalformedDocument) {
		t.Fatalf("expected malformed document, got %v", err)
	}
}

func TestResponseJSONShape(t *testing.T) {
	resp, err := Parse("RS_Via-3.xml", []byte(sampleDocument), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(resp.Variants[1].Flight.Onward[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Carrier_id":"EK","Carrier":"Emirates","FlightNumber":"384","Source":"DXB","Destination":"BKK","DepartureTimeStamp":"2018-10-22T0340","ArrivalTimeStamp":"2018-10-22T1250"}`
	assert.Equal(t, string(data), want)

	var back models.FlightSegment
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	assert.Equal(t, back.CarrierID, "EK")
	assert.Equal(t, back.Attributes.Keys(), resp.Variants[1].Flight.Onward[0].Attributes.Keys())
}

func variantXML(fareBasis string, roundTrip bool) string {
	var b strings.Builder
	b.WriteString(`<Flights><OnwardPricedItinerary><Flights><Flight><Carrier id="XX">X</Carrier>`)
	b.WriteString(`<DepartureTimeStamp>2024-01-01T0800</DepartureTimeStamp><ArrivalTimeStamp>2024-01-01T1000</ArrivalTimeStamp>`)
	b.WriteString(`<FareBasis>` + fareBasis + `</FareBasis></Flight></Flights></OnwardPricedItinerary>`)
	if roundTrip {
		b.WriteString(`<ReturnPricedItinerary><Flights><Flight><Carrier id="XX">X</Carrier>`)
		b.WriteString(`<DepartureTimeStamp>2024-01-05T0800</DepartureTimeStamp><ArrivalTimeStamp>2024-01-05T1000</ArrivalTimeStamp>`)
		b.WriteString(`<FareBasis>` + fareBasis + `</FareBasis></Flight></Flights></ReturnPricedItinerary>`)
	}
	b.WriteString(`<Pricing><ServiceCharges type="SingleAdult" ChargeType="TotalAmount">100.00</ServiceCharges></Pricing></Flights>`)
	return b.String()
}
