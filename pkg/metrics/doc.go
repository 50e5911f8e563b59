// Package metrics exposes Prometheus counters for seed provisioning and TOTP
// generation and verification, plus per-route HTTP metrics.
package metrics
