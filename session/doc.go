// Package session holds the identity state of one authenticated session: the
// bearer token plus the presentation metadata captured at login (role,
// username, display name, instructor and user identifiers).
//
// The package ships three [Store] implementations: an in-memory default that
// lives and dies with the process, a file-backed variant that survives
// restarts, and a Redis-backed variant for co-operating processes that share
// one login. All of them expose the same six keys and nothing else.
//
// A store never talks to the network on its own and never interprets the
// token; deciding when a session is no longer valid is the request layer's
// job.
package session
