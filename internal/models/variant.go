package models

type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"childs"`
	Infants  int `json:"infants"`
}

type Itinerary struct {
	Onward []FlightSegment `json:"onward"`
	Return []FlightSegment `json:"return"`
}

// Variant is one priced itinerary option. TotalCost is rounded to cents;
// TotalSeconds is zero when timestamp data is missing.
type Variant struct {
	FareBasis    string    `json:"FareBasis"`
	Flight       Itinerary `json:"flight"`
	TotalCost    float64   `json:"total_cost"`
	TotalSeconds int64     `json:"total_seconds"`
}

func (v Variant) IsRoundTrip() bool {
	return len(v.Flight.Return) > 0
}

// Carriers returns the distinct carrier ids across both directions in
// order of first appearance.
func (v Variant) Carriers() []string {
	seen := make(map[string]bool)
	var result []string
	for _, dir := range [][]FlightSegment{v.Flight.Onward, v.Flight.Return} {
		for _, s := range dir {
			if !seen[s.CarrierID] {
				seen[s.CarrierID] = true
				result = append(result, s.CarrierID)
			}
		}
	}
	return result
}
