// Package client is the single choke point for every authenticated call to
// the SpacePoint Inventory API. It decorates outgoing requests with the
// bearer credential held by a session.Store, resolves the service base URL,
// and classifies responses so callers never branch on transport details.
//
// Classification follows the service's error contract: 401 clears the
// session and surfaces ErrUnauthorized, 204 yields an explicit empty result,
// any other 2xx yields the JSON body, and everything else becomes an *Error
// carrying the server's "detail" message when one is present.
package client
