package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vanshverma888/Galytix/internal/logging"
	"github.com/vanshverma888/Galytix/internal/metrics"
)

// SetRoutes registers the API endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/server/api/gwp/avg", api.averageGWPHandler)
	router.HandlerFunc(http.MethodGet, "/server/api/gwp/avg", api.averageGWPQueryHandler)
	router.HandlerFunc(http.MethodGet, "/api/gwp/countries.json", api.countriesHandler)
	router.HandlerFunc(http.MethodGet, "/api/gwp/lines-of-business/:country", api.linesOfBusinessHandler)
	router.HandlerFunc(http.MethodGet, "/api/gwp/current-time.json", api.currentTimeHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/metrics", metrics.Handler())

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.sendMethodNotAllowed)
	router.PanicHandler = api.panicHandler
}

// WithMiddleware wraps handler in the server's middleware chain, outermost first:
// metrics, request logging, security headers, compression, rate limiting.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return metrics.InstrumentHandler(handler)
}

func (api *RestAPI) panicHandler(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	logging.FromContext(r.Context()).Error("handler panicked",
		"panic", recovered,
		"path", r.URL.Path)
	api.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}
