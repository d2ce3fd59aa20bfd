package ratelimit

import "strings"

// unlimited is returned for endpoints that are never rate limited.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves a request path and method to its rate-limit
// configuration, or nil when the global default applies. Exact path
// matches win; configs whose path ends in "/" also match by prefix so
// "/runs/" covers "/runs/{id}".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Liveness probes must never be throttled
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
