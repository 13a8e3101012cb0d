package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	testCases := []struct {
		flag string
		want Environment
	}{
		{"development", Development},
		{"test", Test},
		{"Production", Production},
		{"prod", Production},
		{"staging", Development},
		{"", Development},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			assert.Equal(t, tc.want, EnvFlagToEnvironment(tc.flag))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "development", Development.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
}

func TestParseAPIKeys(t *testing.T) {
	assert.Equal(t, []string{"test", "web-ui"}, ParseAPIKeys(" test, ,web-ui "))
	assert.Empty(t, ParseAPIKeys(""))
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"port zero", func(c *Config) { c.Port = 0 }, "port 0 out of range"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "port 70000 out of range"},
		{"missing base URL", func(c *Config) { c.MetroBaseURL = "" }, "metro base URL is required"},
		{"relative base URL", func(c *Config) { c.MetroBaseURL = "agencies/lametro" }, "must be an absolute URL"},
		{"negative rate limit", func(c *Config) { c.RateLimit = -1 }, "rate limit must not be negative"},
		{"negative upstream rate", func(c *Config) { c.UpstreamRateLimit = -0.5 }, "upstream rate limit must not be negative"},
		{"negative timeout", func(c *Config) { c.UpstreamTimeout = -1 }, "upstream timeout must not be negative"},
		{"negative compression size", func(c *Config) { c.CompressionMinSize = -1 }, "compression min size must not be negative"},
		{"compression level zero", func(c *Config) { c.CompressionLevel = 0 }, "compression level 0 out of range 1-9"},
		{"compression level too high", func(c *Config) { c.CompressionLevel = 10 }, "compression level 10 out of range 1-9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := Default()
			tc.mutate(&config)
			err := config.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}
