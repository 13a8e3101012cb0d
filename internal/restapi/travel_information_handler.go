package restapi

import (
	"net/http"

	"metro.transit.dev/internal/models"
	"metro.transit.dev/internal/utils"
)

// travelInformationHandler serves the client's placeholder travel estimate.
// No upstream request is made.
func (api *RestAPI) travelInformationHandler(w http.ResponseWriter, r *http.Request) {
	ids, fieldErrors := utils.ExtractValidatedIDs(r, "routeId", "fromStopId", "toStopId")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	info := api.Metro.TravelInformation(ids[0], ids[1], ids[2])
	api.sendResponse(w, r, models.NewEntryResponse(info, models.NewEmptyReferences()))
}
