package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"metro.transit.dev/internal/appconf"
	"metro.transit.dev/internal/metro"
)

func newTestApplication() *Application {
	return &Application{
		Config: appconf.Config{ApiKeys: []string{"web-ui", "kiosk"}},
	}
}

func TestBlankKeyIsInvalid(t *testing.T) {
	assert.True(t, newTestApplication().IsInvalidAPIKey(""))
}

func TestIsInvalidAPIKey(t *testing.T) {
	app := newTestApplication()
	assert.False(t, app.IsInvalidAPIKey("web-ui"))
	assert.False(t, app.IsInvalidAPIKey("kiosk"))
	assert.True(t, app.IsInvalidAPIKey("WEB-UI"))
	assert.True(t, app.IsInvalidAPIKey("unknown"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := newTestApplication()
	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/route/720?key=kiosk", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/route/720", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/where/route/720?key=nope", nil)))
}

func TestMetroClientSatisfiesMetroService(t *testing.T) {
	var _ MetroService = metro.NewClient(nil)
}
