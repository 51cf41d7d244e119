// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error mapping, request logging, panic recovery, static
// file serving, and correlation ID propagation.
package pkgrouter
