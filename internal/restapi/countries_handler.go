package restapi

import (
	"net/http"

	"github.com/vanshverma888/Galytix/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	countries := api.Dataset.Countries()

	list := make([]models.CountryModel, 0, len(countries))
	for _, country := range countries {
		list = append(list, models.CountryModel{
			Country:         country,
			LinesOfBusiness: len(api.Dataset.LinesOfBusiness(country)),
		})
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}
