// Package metro is a client for the Metro transit API. It fetches routes,
// stops, vehicles and arrival predictions and converts the loosely typed JSON
// the API returns into plain Go values.
package metro

import (
	"context"
	"fmt"
	"net/url"
)

// Client issues one request per call and keeps no state between calls.
type Client struct {
	requester Requester
}

func NewClient(requester Requester) *Client {
	return &Client{requester: requester}
}

func (c *Client) get(ctx context.Context, format string, ids ...string) (Document, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return c.requester.GetJSON(ctx, fmt.Sprintf(format, args...))
}

// Route fetches routes/{id}.
func (c *Client) Route(ctx context.Context, id string) (Route, error) {
	doc, err := c.get(ctx, "routes/%s", id)
	if err != nil {
		return Route{}, err
	}
	return toRoute(doc)
}

// Stop fetches stops/{stopID}.
func (c *Client) Stop(ctx context.Context, stopID string) (Stop, error) {
	doc, err := c.get(ctx, "stops/%s", stopID)
	if err != nil {
		return Stop{}, err
	}
	return toStop(doc)
}

// Stops fetches the stops served by a route, in route order.
func (c *Client) Stops(ctx context.Context, routeID string) (StopList, error) {
	doc, err := c.get(ctx, "routes/%s/stops", routeID)
	if err != nil {
		return StopList{}, err
	}
	return toStopList(doc)
}

// Vehicles fetches the vehicles currently running on a route.
func (c *Client) Vehicles(ctx context.Context, routeID string) (VehicleList, error) {
	doc, err := c.get(ctx, "routes/%s/vehicles", routeID)
	if err != nil {
		return VehicleList{}, err
	}
	return toVehicleList(doc)
}

// Predictions fetches arrival predictions for a stop on a route. The upstream
// path ends in a slash and is sent that way.
func (c *Client) Predictions(ctx context.Context, routeID, stopID string) (PredictionList, error) {
	doc, err := c.get(ctx, "routes/%s/stops/%s/predictions/", routeID, stopID)
	if err != nil {
		return PredictionList{}, err
	}
	return toPredictionList(doc)
}

// TravelInformation is a placeholder. The API has no working trip planning
// endpoint, so it returns the same canned answer for every route and pair of
// stops and never touches the network.
func (c *Client) TravelInformation(routeID, departureStopID, arrivalStopID string) TravelInfo {
	return TravelInfo{
		Message:               "Looks like the bus driver is having a bad day today...",
		TravelDurationMinutes: 30,
	}
}
