package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	dataset := webUI.Dataset

	switch dataType {
	case "stats":
		data = dataset.Stats()
		title = "GWP Dataset - Load Statistics"
	case "countries":
		data = dataset.Countries()
		title = "GWP Dataset - Countries"
	case "records":
		country := r.URL.Query().Get("country")
		if country == "" {
			data = dataset.Records()
			title = "GWP Dataset - Records"
			break
		}
		lobs := dataset.LinesOfBusiness(country)
		records := make([]interface{}, 0, len(lobs))
		for _, lob := range lobs {
			record, _ := dataset.Lookup(country, lob)
			records = append(records, record)
		}
		data = records
		title = "GWP Dataset - Records for " + country
	default:
		data = map[string]string{
			"error": "Please use one of the following: stats, countries, records.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
