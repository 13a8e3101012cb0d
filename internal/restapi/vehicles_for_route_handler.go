package restapi

import (
	"net/http"

	"metro.transit.dev/internal/models"
	"metro.transit.dev/internal/utils"
)

func (api *RestAPI) vehiclesForRouteHandler(w http.ResponseWriter, r *http.Request) {
	ids, fieldErrors := utils.ExtractValidatedIDs(r, "id")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	vehicles, err := api.Metro.Vehicles(r.Context(), ids[0])
	if err != nil {
		api.metroErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(vehicles.Vehicles, models.NewEmptyReferences()))
}
