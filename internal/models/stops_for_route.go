package models

import (
	"strconv"

	"metro.transit.dev/internal/metro"
)

type Polyline struct {
	Length int    `json:"length"`
	Levels string `json:"levels"`
	Points string `json:"points"`
}

func NewPolyline(points string) Polyline {
	return Polyline{Length: len(points), Points: points}
}

// StopsForRouteEntry lists the IDs of a route's stops in route order together
// with a polyline through the located ones. The stops themselves travel in
// the references.
type StopsForRouteEntry struct {
	RouteID  string   `json:"routeId"`
	StopIDs  []string `json:"stopIds"`
	Polyline Polyline `json:"polyline"`
}

// NewStopsForRouteEntry builds the entry and its references from list. Stops
// the API sent without an ID appear only in the references.
func NewStopsForRouteEntry(routeID string, list metro.StopList) (StopsForRouteEntry, ReferencesModel) {
	stopIDs := make([]string, 0, len(list.Stops))
	for _, stop := range list.Stops {
		if stop.ID != nil {
			stopIDs = append(stopIDs, strconv.Itoa(*stop.ID))
		}
	}

	references := NewEmptyReferences()
	if list.Stops != nil {
		references.Stops = list.Stops
	}

	entry := StopsForRouteEntry{
		RouteID:  routeID,
		StopIDs:  stopIDs,
		Polyline: NewPolyline(list.Polyline()),
	}
	return entry, references
}
