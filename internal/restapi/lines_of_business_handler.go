package restapi

import (
	"net/http"

	"github.com/vanshverma888/Galytix/internal/models"
	"github.com/vanshverma888/Galytix/internal/utils"
)

func (api *RestAPI) linesOfBusinessHandler(w http.ResponseWriter, r *http.Request) {
	country := utils.ExtractIDFromParams(r, "country")

	if err := utils.ValidateCountry(country); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"country": {err.Error()},
		})
		return
	}

	lobs := api.Dataset.LinesOfBusiness(country)
	if len(lobs) == 0 {
		api.sendNotFound(w, r)
		return
	}

	list := make([]models.LineOfBusinessSummary, 0, len(lobs))
	for _, lob := range lobs {
		record, ok := api.Dataset.Lookup(country, lob)
		if !ok {
			continue
		}
		list = append(list, models.NewLineOfBusinessSummary(record))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}
