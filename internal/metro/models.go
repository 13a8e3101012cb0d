package metro

import "github.com/twpayne/go-polyline"

type Route struct {
	ID              int    `json:"id"`
	DisplayName     string `json:"displayName"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

// Stop is a stop as reported by the Metro API. The API is inconsistent about
// which stop fields it sends, so ID and the coordinates are nil when absent.
type Stop struct {
	ID          *int     `json:"id"`
	DisplayName string   `json:"displayName"`
	Latitude    *float64 `json:"lat"`
	Longitude   *float64 `json:"lon"`
}

// Located reports whether both coordinates of the stop are known.
func (s Stop) Located() bool {
	return s.Latitude != nil && s.Longitude != nil
}

type StopList struct {
	Stops []Stop `json:"stops"`
}

// Polyline returns the stops that have both coordinates as a Google encoded
// polyline, in list order. It returns "" when no stop is located.
func (l StopList) Polyline() string {
	coords := make([][]float64, 0, len(l.Stops))
	for _, stop := range l.Stops {
		if !stop.Located() {
			continue
		}
		coords = append(coords, []float64{*stop.Latitude, *stop.Longitude})
	}
	if len(coords) == 0 {
		return ""
	}
	return string(polyline.EncodeCoords(coords))
}

type Vehicle struct {
	ID                 int     `json:"id"`
	Heading            int     `json:"heading"`
	RunID              string  `json:"runId"`
	Predictable        bool    `json:"predictable"`
	RouteID            *int    `json:"routeId"`
	SecondsSinceReport int     `json:"secondsSinceReport"`
	Latitude           float64 `json:"lat"`
	Longitude          float64 `json:"lon"`
}

type VehicleList struct {
	Vehicles []Vehicle `json:"vehicles"`
}

type Prediction struct {
	BlockID     string `json:"blockId"`
	RunID       string `json:"runId"`
	RouteID     int    `json:"routeId"`
	IsDeparting bool   `json:"isDeparting"`
	Minutes     int    `json:"minutes"`
	Seconds     int    `json:"seconds"`
}

type PredictionList struct {
	Predictions []Prediction `json:"predictions"`
}

type TravelInfo struct {
	Message               string `json:"message"`
	TravelDurationMinutes int    `json:"travelDurationMinutes"`
}
