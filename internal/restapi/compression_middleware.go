package restapi

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"metro.transit.dev/internal/appconf"
	"metro.transit.dev/internal/logging"
)

// gatewayContentTypes lists what the gateway compresses. Every envelope and
// error body it writes is JSON.
var gatewayContentTypes = []string{"application/json"}

// NewCompressionMiddleware gzips JSON responses of at least minSize bytes for
// clients that send Accept-Encoding: gzip.
func NewCompressionMiddleware(minSize, level int) (func(http.Handler) http.Handler, error) {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(minSize),
		gzhttp.CompressionLevel(level),
		gzhttp.ContentTypes(gatewayContentTypes),
	)
	if err != nil {
		return nil, fmt.Errorf("compression middleware: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}, nil
}

// compression builds the middleware from the gateway configuration. A
// configuration gzhttp rejects is logged and responses go out uncompressed.
func (api *RestAPI) compression(config appconf.Config) func(http.Handler) http.Handler {
	middleware, err := NewCompressionMiddleware(config.CompressionMinSize, config.CompressionLevel)
	if err != nil {
		logging.LogError(api.logger(), "response compression disabled", err)
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware
}
