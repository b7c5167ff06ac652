// Package mock provides an in-memory festival management API server that
// facilitates testing of API clients.
//
// Issued tokens are RS256 signed JWTs; any route handler can be replaced to
// simulate server failures.
package mock
