// Package catalog is the HTTP client for the public product catalog
// (dummyjson.com compatible).
//
// Endpoints used:
//
//	GET /products/categories          category list
//	GET /products/category/{category} {"products": [...]}
//	GET /test                         liveness, used by the connectivity watcher
//
// Payloads are read with gjson so both the old category format (array of
// strings) and the current one (array of {slug, name, url}) are accepted.
//
// Errors: transport failures wrap ErrUnavailable, non-2xx responses are
// *StatusError, malformed bodies wrap ErrUnexpectedPayload.
package catalog
