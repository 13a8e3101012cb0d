package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/where/route/:id", validateAPIKey(api, api.routeHandler))
	router.Handler(http.MethodGet, "/api/where/stop/:id", validateAPIKey(api, api.stopHandler))
	router.Handler(http.MethodGet, "/api/where/stops-for-route/:id", validateAPIKey(api, api.stopsForRouteHandler))
	router.Handler(http.MethodGet, "/api/where/vehicles-for-route/:id", validateAPIKey(api, api.vehiclesForRouteHandler))
	router.Handler(http.MethodGet, "/api/where/predictions/:routeId/:stopId", validateAPIKey(api, api.predictionsHandler))
	router.Handler(http.MethodGet, "/api/where/travel-information/:routeId/:fromStopId/:toStopId", validateAPIKey(api, api.travelInformationHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Handler returns the router wrapped in the full middleware chain. From the
// outside in: security headers, request logging, compression, rate limiting.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = api.compression(api.Config)(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return api.WithSecurityHeaders(handler)
}
