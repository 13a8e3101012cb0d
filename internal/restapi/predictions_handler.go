package restapi

import (
	"net/http"

	"metro.transit.dev/internal/models"
	"metro.transit.dev/internal/utils"
)

func (api *RestAPI) predictionsHandler(w http.ResponseWriter, r *http.Request) {
	ids, fieldErrors := utils.ExtractValidatedIDs(r, "routeId", "stopId")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	predictions, err := api.Metro.Predictions(r.Context(), ids[0], ids[1])
	if err != nil {
		api.metroErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(predictions.Predictions, models.NewEmptyReferences()))
}
