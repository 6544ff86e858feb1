package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// SentinelIP is the shared bucket for requests whose source address cannot be
// determined. Fail-safe: all such requests count against one window together.
const SentinelIP = "0.0.0.0"

// ipHeaders is the resolution order for proxied deployments:
// CDN connecting IP, then the first forwarded-for hop, then reverse-proxy
// real IP, then the raw connection address.
var ipHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// ClientIP resolves the client address for rate limiting. The first candidate
// that parses as a syntactically valid IPv4 or IPv6 address wins.
func ClientIP(r *http.Request) string {
	for _, header := range ipHeaders {
		candidate := r.Header.Get(header)
		if candidate == "" {
			continue
		}
		// Forwarded-for chains list the original client first
		if idx := strings.Index(candidate, ","); idx >= 0 {
			candidate = candidate[:idx]
		}
		candidate = strings.TrimSpace(candidate)
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if net.ParseIP(host) != nil {
		return host
	}

	return SentinelIP
}
