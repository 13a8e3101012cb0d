package app

import (
	"context"
	"log/slog"

	"metro.transit.dev/internal/appconf"
	"metro.transit.dev/internal/metro"
)

// MetroService is the part of *metro.Client the gateway handlers depend on.
type MetroService interface {
	Route(ctx context.Context, id string) (metro.Route, error)
	Stop(ctx context.Context, stopID string) (metro.Stop, error)
	Stops(ctx context.Context, routeID string) (metro.StopList, error)
	Vehicles(ctx context.Context, routeID string) (metro.VehicleList, error)
	Predictions(ctx context.Context, routeID, stopID string) (metro.PredictionList, error)
	TravelInformation(routeID, departureStopID, arrivalStopID string) metro.TravelInfo
}

// Application holds the dependencies shared by the HTTP handlers and
// middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Metro  MetroService
}
