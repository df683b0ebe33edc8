package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL(t *testing.T) {
	testCases := []struct {
		description string
		override    string
		origin      string
		expect      string
	}{
		{
			description: "explicit override wins",
			override:    "https://api.spacepoint.io",
			origin:      "http://localhost:3000",
			expect:      "https://api.spacepoint.io",
		},
		{
			description: "override trailing slash trimmed",
			override:    "https://api.spacepoint.io/",
			expect:      "https://api.spacepoint.io",
		},
		{
			description: "localhost origin targets local service",
			origin:      "http://localhost:3000",
			expect:      "http://localhost:8000",
		},
		{
			description: "loopback origin targets local service",
			origin:      "http://127.0.0.1:5173",
			expect:      "http://localhost:8000",
		},
		{
			description: "production origin keeps same-origin paths",
			origin:      "https://inventory.spacepoint.io",
			expect:      "",
		},
		{
			description: "no origin keeps same-origin paths",
			expect:      "",
		},
	}
	for _, testCase := range testCases {
		actual := ResolveBaseURL(testCase.override, testCase.origin)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
