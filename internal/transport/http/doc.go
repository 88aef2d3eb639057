// Package http contains the HTTP handlers for the analytics API.
//
// Handlers are thin adapters over the service layer: they parse and
// validate request parameters, call one service method, and render the
// result with go-chi/render. Failures are converted to RFC 7807
// problem responses through the shared error handler.
package http
