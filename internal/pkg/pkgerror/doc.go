// Package pkgerror defines the structured error type used across the
// application.
//
// Errors carry a user-facing message, a type, and a code. The code is mapped
// to an HTTP status code at the edge (the router's error codec), so handlers
// and use cases never write status codes themselves.
package pkgerror
