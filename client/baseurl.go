package client

import (
	"net/url"
	"strings"
)

// localServiceURL is where the API listens during local development.
const localServiceURL = "http://localhost:8000"

// ResolveBaseURL applies the base-URL policy: an explicit override is used
// verbatim, a local development origin targets the fixed local service
// address, and anything else keeps same-origin relative paths (empty base).
// The same configuration therefore serves both development and production.
func ResolveBaseURL(override, origin string) string {
	if override != "" {
		return strings.TrimSuffix(override, "/")
	}
	if isLocalOrigin(origin) {
		return localServiceURL
	}
	return ""
}

func isLocalOrigin(origin string) bool {
	if origin == "" {
		return false
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch parsed.Hostname() {
	case "localhost", "127.0.0.1", "::1", "0.0.0.0":
		return true
	}
	return false
}
