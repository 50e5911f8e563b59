// Package requestid tags every HTTP request with an X-Request-ID and exposes
// it to handlers and log records.
package requestid
