// Package clientip resolves the caller's IP address for rate limiting and
// logging.
//
// Proxy headers are spoofable, so a Resolver trusts none by default and uses
// the connection's RemoteAddr. Deployments behind a known proxy list the
// headers it sets:
//
//	res := clientip.New("CF-Connecting-IP", "X-Forwarded-For")
//	r.Use(res.Middleware)
package clientip
