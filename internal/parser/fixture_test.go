package parser

import (
	"testing"

	"github.com/beevik/etree"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<AirFareSearchResponse RequestTime="28-09-2015 20:23:49" ResponseTime="28-09-2015 20:30:56">
  <RequestId>123ABCD</RequestId>
  <PricedItineraries>
    <Flights>
      <OnwardPricedItinerary>
        <Flights>
          <Flight>
            <Carrier id="AI">AirIndia</Carrier>
            <FlightNumber>996</FlightNumber>
            <Source>DXB</Source>
            <Destination>DEL</Destination>
            <DepartureTimeStamp>2018-10-22T0005</DepartureTimeStamp>
            <ArrivalTimeStamp>2018-10-22T0445</ArrivalTimeStamp>
            <Class>G</Class>
            <NumberOfStops>0</NumberOfStops>
            <FareBasis>
                2820303decf751-5511-447a-aeb1-810a6b10ad7d@@$255_DXB_DEL_996_9_00:05_$255_DEL_BKK_332_9_13:50__A2_0_0
            </FareBasis>
            <WarningText/>
            <TicketType>E</TicketType>
          </Flight>
          <Flight>
            <Carrier id="AI">AirIndia</Carrier>
            <FlightNumber>332</FlightNumber>
            <Source>DEL</Source>
            <Destination>BKK</Destination>
            <DepartureTimeStamp>2018-10-22T1350</DepartureTimeStamp>
            <ArrivalTimeStamp>2018-10-22T1935</ArrivalTimeStamp>
            <Class>G</Class>
            <NumberOfStops>0</NumberOfStops>
            <FareBasis>
                2820303decf751-5511-447a-aeb1-810a6b10ad7d@@$255_DXB_DEL_996_9_00:05_$255_DEL_BKK_332_9_13:50__A2_0_0
            </FareBasis>
            <WarningText/>
            <TicketType>E</TicketType>
          </Flight>
        </Flights>
      </OnwardPricedItinerary>
      <Pricing currency="SGD">
        <ServiceCharges type="SingleAdult" ChargeType="BaseFare">189.00</ServiceCharges>
        <ServiceCharges type="SingleAdult" ChargeType="AirlineTaxes">357.60</ServiceCharges>
        <ServiceCharges type="SingleAdult" ChargeType="TotalAmount">546.60</ServiceCharges>
      </Pricing>
    </Flights>
    <Flights>
      <OnwardPricedItinerary>
        <Flights>
          <Flight>
            <Carrier id="EK">Emirates</Carrier>
            <FlightNumber>384</FlightNumber>
            <Source>DXB</Source>
            <Destination>BKK</Destination>
            <DepartureTimeStamp>2018-10-22T0340</DepartureTimeStamp>
            <ArrivalTimeStamp>2018-10-22T1250</ArrivalTimeStamp>
            <FareBasis>RT1Y__A2_0_0</FareBasis>
          </Flight>
        </Flights>
      </OnwardPricedItinerary>
      <ReturnPricedItinerary>
        <Flights>
          <Flight>
            <Carrier id="EK">Emirates</Carrier>
            <FlightNumber>385</FlightNumber>
            <Source>BKK</Source>
            <Destination>DXB</Destination>
            <DepartureTimeStamp>2018-10-30T1450</DepartureTimeStamp>
            <ArrivalTimeStamp>2018-10-30T1815</ArrivalTimeStamp>
            <FareBasis>RT1Y__A2_0_0</FareBasis>
          </Flight>
        </Flights>
      </ReturnPricedItinerary>
      <Pricing currency="SGD">
        <ServiceCharges type="SingleAdult" ChargeType="TotalAmount">800.10</ServiceCharges>
        <ServiceCharges type="SingleChild" ChargeType="TotalAmount">400.00</ServiceCharges>
      </Pricing>
    </Flights>
  </PricedItineraries>
</AirFareSearchResponse>`

func mustElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	return doc.Root()
}
