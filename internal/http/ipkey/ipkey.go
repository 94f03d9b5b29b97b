package ipkey

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	realIPHeader       = "X-Real-Ip"
)

// FromHeaders derives a rate-limit key from proxy headers. When no IP
// header is present the fallback token keys the request on its own bucket.
func FromHeaders(headers http.Header, fallback string) string {
	forwarded := headers.Get(forwardedForHeader)
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	realIP := headers.Get(realIPHeader)
	if realIP != "" {
		return strings.TrimSpace(realIP)
	}
	return "unknown-" + fallback
}

// FromRequest derives the key with a fresh random fallback token. Two
// headerless requests never share a bucket.
func FromRequest(r *http.Request) string {
	return FromHeaders(r.Header, uuid.NewString())
}
