// Package common contains small constants and helpers shared by the
// storefront client packages.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request id on
// outbound catalog calls.
const RequestIDHeaderName = "X-Request-ID"
