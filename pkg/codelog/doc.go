// Package codelog writes the current TOTP code as a timestamped line, once or
// on a minute-aligned schedule. It backs the cron binary that leaves an audit
// trail of codes.
package codelog
