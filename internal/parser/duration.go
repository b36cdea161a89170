package parser

import (
	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/timestamp"
)

const (
	attrDeparture = "DepartureTimeStamp"
	attrArrival   = "ArrivalTimeStamp"
)

// DirectionSeconds measures a direction from the first leg's departure to
// the last leg's arrival. A missing endpoint yields 0.
func DirectionSeconds(segments []models.FlightSegment) (int64, error) {
	if len(segments) == 0 {
		return 0, nil
	}

	dep, ok := segments[0].Get(attrDeparture)
	if !ok {
		return 0, nil
	}
	arr, ok := segments[len(segments)-1].Get(attrArrival)
	if !ok {
		return 0, nil
	}

	return timestamp.Elapsed(dep, arr)
}

func TotalSeconds(it models.Itinerary) (int64, error) {
	onward, err := DirectionSeconds(it.Onward)
	if err != nil {
		return 0, wrapDirection(DirectionOnward, err)
	}
	ret, err := DirectionSeconds(it.Return)
	if err != nil {
		return 0, wrapDirection(DirectionReturn, err)
	}
	return onward + ret, nil
}
