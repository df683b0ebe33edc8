// Package spacepoint provides the Go client for the SpacePoint Inventory
// API, the workshop and CubeSat management service.
//
// The package glues the session store defined in the session subpackage with
// the authenticated request client in the client subpackage and exposes typed
// services for the service's resource families. In practice it is used as an
// umbrella package with a single entry point:
//
//	sp := spacepoint.New(spacepoint.WithBaseURL("https://inventory.example.com"))
//	login, err := sp.Auth().Login(ctx, "alice", "secret")
//	workshops, err := sp.Workshops().List(ctx)
//
// Every call past Login carries the session bearer token automatically; a
// 401 clears the session and fires the configured expiry callback, so the
// hosting application can redirect to its login surface.
package spacepoint
