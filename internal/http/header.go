package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID    = "x-request-id"
	headerSessionID    = "x-session-id"
	headerForwardedFor = "x-forwarded-for"
	headerUserAgent    = "user-agent"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func sessionID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerSessionID))
}

func userAgent(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserAgent))
}

// clientAddress prefers the first hop of x-forwarded-for (the service runs
// behind the platform's reverse proxy) and falls back to the socket peer.
func clientAddress(r *http.Request) string {
	forwarded := r.Header.Get(headerForwardedFor)
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}
