// Package clientip extracts the submitting client's IP address for
// audit logging. The result is recorded with each submission and is
// never used for trust decisions.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the first non-empty value of the Client-IP
// header, the X-Forwarded-For header (first hop), then the
// transport-level peer address.
func FromRequest(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("Client-IP")); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
