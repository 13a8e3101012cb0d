package metro

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"metro.transit.dev/internal/logging"
)

func newTestRequester(t *testing.T, handler http.HandlerFunc) (*HTTPRequester, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var buf bytes.Buffer
	requester, err := NewHTTPRequester(RequesterConfig{
		BaseURL: server.URL + "/agencies/lametro/",
		Timeout: 5 * time.Second,
		Logger:  logging.NewStructuredLogger(&buf, slog.LevelDebug),
	})
	require.NoError(t, err)
	return requester, &buf
}

func TestNewHTTPRequesterValidatesConfig(t *testing.T) {
	testCases := []struct {
		name   string
		config RequesterConfig
	}{
		{"empty base", RequesterConfig{}},
		{"relative base", RequesterConfig{BaseURL: "agencies/lametro"}},
		{"negative rate", RequesterConfig{BaseURL: "http://api.metro.net/agencies/lametro/", RateLimit: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHTTPRequester(tc.config)
			assert.Error(t, err)
		})
	}
}

func TestHTTPRequesterURL(t *testing.T) {
	for _, base := range []string{"http://api.metro.net/agencies/lametro", "http://api.metro.net/agencies/lametro/"} {
		requester, err := NewHTTPRequester(RequesterConfig{BaseURL: base})
		require.NoError(t, err)

		assert.Equal(t, "http://api.metro.net/agencies/lametro/routes/720", requester.URL("routes/720"))
		assert.Equal(t, "http://api.metro.net/agencies/lametro/routes/720/stops/1/predictions/", requester.URL("/routes/720/stops/1/predictions/"))
	}
}

func TestHTTPRequesterGetJSON(t *testing.T) {
	var gotPath, gotAccept string
	requester, logs := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"720","display_name":"720 Wilshire Bl Rapid"}`))
	})

	doc, err := requester.GetJSON(context.Background(), "routes/720/stops/6033/predictions/")
	require.NoError(t, err)

	assert.Equal(t, "/agencies/lametro/routes/720/stops/6033/predictions/", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.False(t, doc.IsNull("display_name"))
	assert.Contains(t, logs.String(), `"msg":"metro_request"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestHTTPRequesterDecodesGzip(t *testing.T) {
	requester, _ := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			_, _ = w.Write([]byte(`{"items":[]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(`{"items":[{"id":"1","display_name":"Main St"}]}`))
		_ = gz.Close()
	})

	doc, err := requester.GetJSON(context.Background(), "routes/720/stops")
	require.NoError(t, err)

	list, err := toStopList(doc)
	require.NoError(t, err)
	require.Len(t, list.Stops, 1)
	assert.Equal(t, "Main St", list.Stops[0].DisplayName)
}

func TestHTTPRequesterStatusErrors(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			calls := 0
			requester, _ := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(status)
			})

			_, err := requester.GetJSON(context.Background(), "routes/1")

			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, status, transportErr.StatusCode)
			assert.Equal(t, http.MethodGet, transportErr.Method)
			assert.Contains(t, transportErr.URL, "/agencies/lametro/routes/1")
			assert.Equal(t, status == http.StatusNotFound, transportErr.NotFound())
			assert.Equal(t, 1, calls)
		})
	}
}

func TestHTTPRequesterMalformedBody(t *testing.T) {
	requester, _ := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := requester.GetJSON(context.Background(), "routes/1")
	requireParseError(t, err, "$", "object")
}

func TestHTTPRequesterConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	requester, err := NewHTTPRequester(RequesterConfig{BaseURL: baseURL})
	require.NoError(t, err)

	_, err = requester.GetJSON(context.Background(), "routes/1")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, 0, transportErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(transportErr))
}

func TestHTTPRequesterHonoursContext(t *testing.T) {
	requester, _ := newTestRequester(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := requester.GetJSON(ctx, "routes/1")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPRequesterRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	requester, err := NewHTTPRequester(RequesterConfig{BaseURL: server.URL, RateLimit: 0.001})
	require.NoError(t, err)

	_, err = requester.GetJSON(context.Background(), "routes/1")
	require.NoError(t, err, "the first request uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = requester.GetJSON(ctx, "routes/1")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, 0, transportErr.StatusCode)
}
