package restapi

import (
	"time"

	"metro.transit.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a RestAPI with its per-key rate limiter running. Call
// Shutdown to stop the limiter's cleanup goroutine.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second, func(key string) bool {
			return !app.IsInvalidAPIKey(key)
		}),
	}
}

func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
