package restapi

import (
	"net/http"

	"metro.transit.dev/internal/models"
	"metro.transit.dev/internal/utils"
)

func (api *RestAPI) stopsForRouteHandler(w http.ResponseWriter, r *http.Request) {
	ids, fieldErrors := utils.ExtractValidatedIDs(r, "id")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	routeID := ids[0]

	stops, err := api.Metro.Stops(r.Context(), routeID)
	if err != nil {
		api.metroErrorResponse(w, r, err)
		return
	}

	entry, references := models.NewStopsForRouteEntry(routeID, stops)
	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}
