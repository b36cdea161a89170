package parser

import (
	"errors"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/dharmasatrya/fareparse/internal/models"
)

const chargesVariant = `<Flights>
  <Pricing>
    <ServiceCharges type="SingleAdult" ChargeType="BaseFare">100.00</ServiceCharges>
    <ServiceCharges type="SingleAdult" ChargeType="TotalAmount">150.00</ServiceCharges>
    <ServiceCharges type="SingleChild" ChargeType="TotalAmount">75.00</ServiceCharges>
    <ServiceCharges type="SingleChild" ChargeType="TotalAmount">99.00</ServiceCharges>
    <ServiceCharges type="SingleInfant" ChargeType="AirlineTaxes">12.00</ServiceCharges>
  </Pricing>
</Flights>`

func TestFindFares(t *testing.T) {
	fares, err := FindFares(mustElement(t, chargesVariant))
	assert.Equal(t, err, nil)
	assert.Equal(t, fares.Adult, 150.0)
	// first matching record wins
	assert.Equal(t, fares.Child, 75.0)
	// only a non-total record exists for infants
	assert.Equal(t, fares.Infant, 0.0)
}

func TestTotalCostExample(t *testing.T) {
	fares, err := FindFares(mustElement(t, chargesVariant))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts, err := DecodeFareCode("RT1Y__A2_1_0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := TotalCost(fares, counts)
	if total != 375.00 {
		t.Fatalf("expected 375.00, got %v", total)
	}
}

func TestTotalCostRoundsPerProduct(t *testing.T) {
	total := TotalCost(Fares{Adult: 0.1, Child: 0.2}, models.PassengerCounts{Adults: 3, Children: 1})
	if total != 0.5 {
		t.Fatalf("expected 0.5, got %v", total)
	}

	total = TotalCost(Fares{Adult: 546.60}, models.PassengerCounts{Adults: 2})
	if total != 1093.2 {
		t.Fatalf("expected 1093.2, got %v", total)
	}
}

func TestTotalCostNoCharges(t *testing.T) {
	fares, err := FindFares(mustElement(t, `<Flights/>`))
	assert.Equal(t, err, nil)
	assert.Equal(t, TotalCost(fares, models.PassengerCounts{Adults: 3, Children: 2, Infants: 1}), 0.0)
}

func TestTotalCostMonotonic(t *testing.T) {
	fares := Fares{Adult: 123.45, Child: 67.89, Infant: 10.01}
	base := models.PassengerCounts{Adults: 1, Children: 1, Infants: 1}
	prev := TotalCost(fares, base)

	for step := 0; step < 5; step++ {
		for _, bump := range []func(*models.PassengerCounts){
			func(c *models.PassengerCounts) { c.Adults++ },
			func(c *models.PassengerCounts) { c.Children++ },
			func(c *models.PassengerCounts) { c.Infants++ },
		} {
			bump(&base)
			next := TotalCost(fares, base)
			if next < prev {
				t.Fatalf("total decreased from %v to %v at %+v", prev, next, base)
			}
			prev = next
		}
	}
}

func TestFindFareMalformedAmount(t *testing.T) {
	for _, body := range []string{"abc", "-5.00", ""} {
		node := mustElement(t, `<Flights><ServiceCharges type="SingleAdult" ChargeType="TotalAmount">`+body+`</ServiceCharges></Flights>`)
		_, err := FindFare(node, SingleAdult)
		if !errors.Is(err, models.ErrMalformedCharge) {
			t.Fatalf("amount %q: expected ErrMalformedCharge, got %v", body, err)
		}
	}
}
