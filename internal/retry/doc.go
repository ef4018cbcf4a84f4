// Package retry wraps an operation with exponential backoff on rate-limit
// failures. It is the only retry policy used by the generation pipeline:
// deterministic doubling delays, no jitter, and a cap on attempts rather
// than on elapsed time.
package retry
