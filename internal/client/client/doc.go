// Package client talks to the gophauth HTTP API and opens the local SQLite
// cache the CLI keeps its session in.
//
// Errors returned by Client methods can be matched with errors.Is against
// ErrUnavailable (transport failure or 5xx) and ErrUnauthorized (401/403).
// Any other rejection is an *APIError carrying the server's message.
package client
