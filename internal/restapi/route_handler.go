package restapi

import (
	"net/http"

	"metro.transit.dev/internal/models"
	"metro.transit.dev/internal/utils"
)

func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	ids, fieldErrors := utils.ExtractValidatedIDs(r, "id")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	route, err := api.Metro.Route(r.Context(), ids[0])
	if err != nil {
		api.metroErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(route, models.NewEmptyReferences()))
}
