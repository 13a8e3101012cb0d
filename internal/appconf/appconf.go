package appconf

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag to an Environment. Unknown values
// fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// DefaultMetroBaseURL is the public Metro API root for LA Metro buses.
const DefaultMetroBaseURL = "http://api.metro.net/agencies/lametro/"

// Config holds the settings of the gateway and its upstream client. It is
// filled from command-line flags in cmd/api.
type Config struct {
	Port    int
	Env     Environment
	ApiKeys []string
	// RateLimit is the number of gateway requests per second allowed for
	// each API key. Zero disables limiting.
	RateLimit int

	MetroBaseURL    string
	UpstreamTimeout time.Duration
	// UpstreamRateLimit caps outbound Metro API requests per second. Zero
	// disables the cap.
	UpstreamRateLimit float64

	// CompressionMinSize is the smallest JSON response in bytes that is
	// gzipped. CompressionLevel is the gzip level, 1 to 9.
	CompressionMinSize int
	CompressionLevel   int

	LogLevel string
}

// Default returns the configuration used when no flag overrides a value.
func Default() Config {
	return Config{
		Port:            4000,
		Env:             Development,
		ApiKeys:         []string{"test"},
		RateLimit:       100,
		MetroBaseURL:    DefaultMetroBaseURL,
		UpstreamTimeout: 10 * time.Second,

		CompressionMinSize: 1024,
		CompressionLevel:   6,
		LogLevel:           "info",
	}
}

// ParseAPIKeys splits a comma separated flag value, dropping blanks.
func ParseAPIKeys(flagValue string) []string {
	var keys []string
	for _, key := range strings.Split(flagValue, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}

	if c.MetroBaseURL == "" {
		errs = append(errs, errors.New("metro base URL is required"))
	} else if u, err := url.Parse(c.MetroBaseURL); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, fmt.Errorf("metro base URL %q must be an absolute URL", c.MetroBaseURL))
	}

	if c.RateLimit < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	if c.UpstreamRateLimit < 0 {
		errs = append(errs, errors.New("upstream rate limit must not be negative"))
	}
	if c.UpstreamTimeout < 0 {
		errs = append(errs, errors.New("upstream timeout must not be negative"))
	}

	if c.CompressionMinSize < 0 {
		errs = append(errs, errors.New("compression min size must not be negative"))
	}
	if c.CompressionLevel < 1 || c.CompressionLevel > 9 {
		errs = append(errs, fmt.Errorf("compression level %d out of range 1-9", c.CompressionLevel))
	}

	return errors.Join(errs...)
}
