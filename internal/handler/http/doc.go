// Package http implements the HTTP transport layer of the vault.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, metrics, CORS, timeouts and response
// compression apply to every route; bearer authentication applies to
// /api/passwords only. Service errors are translated to a status code and a
// {"message": ...} body in errors_mapper.go.
package http
