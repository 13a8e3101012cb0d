package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"metro.transit.dev/internal/app"
	"metro.transit.dev/internal/appconf"
	"metro.transit.dev/internal/logging"
	"metro.transit.dev/internal/metro"
	"metro.transit.dev/internal/models"
)

// fakeMetro records the IDs it was asked for and answers from its fields.
type fakeMetro struct {
	route       metro.Route
	stop        metro.Stop
	stops       metro.StopList
	vehicles    metro.VehicleList
	predictions metro.PredictionList
	err         error

	calls [][]string
}

func (f *fakeMetro) record(ids ...string) {
	f.calls = append(f.calls, ids)
}

func (f *fakeMetro) Route(ctx context.Context, id string) (metro.Route, error) {
	f.record("route", id)
	return f.route, f.err
}

func (f *fakeMetro) Stop(ctx context.Context, stopID string) (metro.Stop, error) {
	f.record("stop", stopID)
	return f.stop, f.err
}

func (f *fakeMetro) Stops(ctx context.Context, routeID string) (metro.StopList, error) {
	f.record("stops", routeID)
	return f.stops, f.err
}

func (f *fakeMetro) Vehicles(ctx context.Context, routeID string) (metro.VehicleList, error) {
	f.record("vehicles", routeID)
	return f.vehicles, f.err
}

func (f *fakeMetro) Predictions(ctx context.Context, routeID, stopID string) (metro.PredictionList, error) {
	f.record("predictions", routeID, stopID)
	return f.predictions, f.err
}

func (f *fakeMetro) TravelInformation(routeID, departureStopID, arrivalStopID string) metro.TravelInfo {
	f.record("travel", routeID, departureStopID, arrivalStopID)
	return metro.NewClient(nil).TravelInformation(routeID, departureStopID, arrivalStopID)
}

// createTestApi creates a RestAPI backed by service, without rate limiting.
func createTestApi(t *testing.T, service app.MetroService) (*RestAPI, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	config := appconf.Default()
	config.Env = appconf.Test
	config.ApiKeys = []string{"TEST"}
	config.RateLimit = 0

	api := NewRestAPI(&app.Application{
		Config: config,
		Logger: logging.NewStructuredLogger(&logs, slog.LevelInfo),
		Metro:  service,
	})
	t.Cleanup(api.Shutdown)
	return api, &logs
}

// serveAndRetrieveEndpoint serves api through its full middleware chain,
// requests endpoint and decodes the envelope.
func serveAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}

func referencedStops(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	references, ok := data["references"].(map[string]interface{})
	require.True(t, ok, "data.references should be an object")
	stops, ok := references["stops"].([]interface{})
	require.True(t, ok, "data.references.stops should be an array")
	return stops
}

func listOf(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "data.list should be an array")
	return list
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
