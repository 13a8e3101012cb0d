package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"metro.transit.dev/internal/logging"
	"metro.transit.dev/internal/metro"
	"metro.transit.dev/internal/models"
)

func (api *RestAPI) logger() *slog.Logger {
	if api.Logger != nil {
		return api.Logger
	}
	return slog.Default()
}

// invalidAPIKeyResponse sends a 401 in the version 1 envelope that existing
// OneBusAway clients expect for key errors.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := models.NewResponse(http.StatusUnauthorized, nil, "permission denied")
	response.Version = 1

	setJSONResponseType(w)
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.logger().Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.logger(), "internal server error", err, slog.String("path", r.URL.Path))
	api.sendStatus(w, r, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.logger().Error("failed to encode validation error response", "error", err)
	}
}

// metroErrorResponse translates an error from the Metro client. An upstream
// 404 passes through; any other upstream failure is a 502.
func (api *RestAPI) metroErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var transportErr *metro.TransportError
	var parseErr *metro.ParseError

	switch {
	case errors.As(err, &transportErr) && transportErr.NotFound():
		noteUpstreamError(r, "not_found")
		api.sendNotFound(w, r)
	case errors.As(err, &parseErr):
		noteUpstreamError(r, "malformed")
		logging.LogError(api.logger(), "upstream response malformed", err,
			slog.String("path", r.URL.Path),
			slog.String("field", parseErr.Field))
		api.sendStatus(w, r, http.StatusBadGateway, "upstream response malformed")
	case errors.As(err, &transportErr):
		noteUpstreamError(r, "unavailable")
		logging.LogError(api.logger(), "upstream unavailable", err,
			slog.String("path", r.URL.Path),
			slog.Int("upstream_status", transportErr.StatusCode))
		api.sendStatus(w, r, http.StatusBadGateway, "upstream unavailable")
	default:
		noteUpstreamError(r, "internal")
		api.serverErrorResponse(w, r, err)
	}
}
