package middleware

import (
	"net"
	"net/http"
	"strings"
)

const headerXForwardedFor = "X-Forwarded-For"

// ClientIP resolves the address a request is attributed to: the first
// X-Forwarded-For entry when it parses as an IP, else the peer address. The
// boolean is false when neither yields a parseable IP.
func ClientIP(r *http.Request) (string, bool) {
	if forwarded := r.Header.Get(headerXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String(), true
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return "", false
	}

	return ip.String(), true
}
