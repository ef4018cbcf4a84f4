// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts HTTP to the generation pipeline and the
// plan service.
//
// Errors are written as {"error": ..., "trace_id": ...}. MapErrorToStatusCode
// and GetSafeErrorMessage decide the status and the client-visible text;
// the full error is only logged, after redaction.
package api
