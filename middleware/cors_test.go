package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dukicks/config"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	previous := config.AppConfig
	t.Cleanup(func() { config.AppConfig = previous })
	config.AppConfig = config.DefaultConfig()
	config.AppConfig.OriginURL = "https://dukicks.mx"

	cases := map[string]bool{
		"":                      true,
		"http://localhost:5173": true,
		"https://dukicks.mx":    true,
		"http://evil.example":   false,
	}
	for origin, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/search/live", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		assert.Equal(t, want, OriginAllowed(r), "origin %q", origin)
	}
}
