package utils

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a route parameter from the request context and removes a ".json" suffix.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	return strings.TrimSuffix(rawID, ".json")
}

// ParseLinesOfBusinessParam collects the "lob" query parameter. It may be
// repeated and each value may hold a comma separated list. Blank items are
// dropped; the rest are kept verbatim because matching is case-sensitive.
func ParseLinesOfBusinessParam(params url.Values) []string {
	var lobs []string
	for _, raw := range params["lob"] {
		for _, item := range strings.Split(raw, ",") {
			if strings.TrimSpace(item) == "" {
				continue
			}
			lobs = append(lobs, item)
		}
	}
	return lobs
}

// ClientIP identifies the caller for rate limiting by the host part of
// RemoteAddr. The first X-Forwarded-For hop is used instead only when
// trustForwarded is set, i.e. when the server sits behind a proxy that
// overwrites the header.
func ClientIP(r *http.Request, trustForwarded bool) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); trustForwarded && forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
