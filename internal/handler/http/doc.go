// Package http implements the HTTP transport layer of the client.
//
// It exposes route wiring, request handlers, and middleware for the local
// REST API the frontend talks to. Cross-cutting concerns such as request
// tracing and access logging are handled here; pipeline errors are
// classified into outcome payloads before anything is written, so the
// frontend never sees a raw transport error.
package http
