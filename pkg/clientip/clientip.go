package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolver determines the caller address. Proxy headers are only consulted
// when listed, in priority order; otherwise RemoteAddr is used.
type Resolver struct {
	headers []string
}

// Config lists the proxy headers to trust, e.g. "CF-Connecting-IP,X-Forwarded-For".
type Config struct {
	TrustedHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
}

// New returns a Resolver that trusts only the listed headers, in order.
// With none it uses RemoteAddr alone.
func New(trustedHeaders ...string) *Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: headers}
}

// NewFromConfig is New with CLIENT_IP_HEADERS.
func NewFromConfig(cfg Config) *Resolver {
	return New(cfg.TrustedHeaders...)
}

// IP returns the normalized client address, or "" when none can be parsed.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// list-valued headers such as X-Forwarded-For: first valid entry wins
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
