package ratelimit

import (
	"strings"
)

// MatchEndpoint picks the endpoint configuration for a request.
// Paths use the same shape as the server's routes: a "{name}" segment matches
// any single non-empty segment, and a trailing "/" matches the whole subtree.
// Literal paths win over patterns; nil means the default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var pattern *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if pattern == nil && matchPattern(config.Path, path) {
			pattern = config
		}
	}
	return pattern
}

func matchPattern(pattern, path string) bool {
	subtree := strings.HasSuffix(pattern, "/")
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")

	if len(got) < len(want) || (!subtree && len(got) != len(want)) {
		return false
	}
	for i, segment := range want {
		if isWildcard(segment) {
			if got[i] == "" {
				return false
			}
			continue
		}
		if segment != got[i] {
			return false
		}
	}
	return true
}

func isWildcard(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
