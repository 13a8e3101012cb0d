package restapi

import (
	"encoding/json"
	"net/http"

	"metro.transit.dev/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(w)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.logger().Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendStatus(w, r, http.StatusNotFound, "resource not found")
}

// sendStatus writes an envelope with no data.
func (api *RestAPI) sendStatus(w http.ResponseWriter, r *http.Request, code int, text string) {
	setJSONResponseType(w)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.NewResponse(code, nil, text)); err != nil {
		api.logger().Error("failed to encode status response", "error", err, "status", code)
	}
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
