// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP to the reading service: handlers
// decode a birth date and time, call the service, and map domain errors to
// status codes without leaking birth data or internal details.
package api
