package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vanshverma888/Galytix/internal/logging"
	"github.com/vanshverma888/Galytix/internal/metrics"
	"github.com/vanshverma888/Galytix/internal/models"
	"github.com/vanshverma888/Galytix/internal/utils"
)

const maxRequestBodyBytes = 1 << 20

// averageGWPHandler answers POST /server/api/gwp/avg with a JSON body
// {"country": "ae", "lob": ["property", "transport"]}.
func (api *RestAPI) averageGWPHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var request models.AverageGWPRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			api.badRequestResponse(w, r, "request body too large")
			return
		}
		api.badRequestResponse(w, r, "malformed JSON body")
		return
	}

	api.respondWithAverages(w, r, request)
}

// averageGWPQueryHandler answers GET /server/api/gwp/avg?country=ae&lob=property,transport.
func (api *RestAPI) averageGWPQueryHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	request := models.AverageGWPRequest{
		Country:         params.Get("country"),
		LinesOfBusiness: utils.ParseLinesOfBusinessParam(params),
	}

	api.respondWithAverages(w, r, request)
}

func (api *RestAPI) respondWithAverages(w http.ResponseWriter, r *http.Request, request models.AverageGWPRequest) {
	if fieldErrors := utils.ValidateAverageRequest(request.Country, request.LinesOfBusiness); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	averages := api.Dataset.Averages(request.Country, request.LinesOfBusiness)

	matched := 0
	for lob := range averages {
		if _, ok := api.Dataset.Lookup(request.Country, lob); ok {
			matched++
		}
	}
	metrics.RecordAverageQuery(matched, len(averages)-matched)

	logging.FromContext(ctx).Debug("computed average GWP",
		slog.String("country", request.Country),
		slog.Int("lines_requested", len(averages)),
		slog.Int("lines_matched", matched))

	api.sendJSON(w, r, models.AverageGWPResponse(averages))
}
