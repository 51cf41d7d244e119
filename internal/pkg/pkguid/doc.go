// Package pkguid provides generators for request correlation IDs.
//
// Callers depend on the StringID interface. Two strategies exist: random
// UUIDv7 strings and time-ordered Snowflake numbers rendered as strings.
package pkguid
