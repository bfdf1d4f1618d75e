package restapi

import "net/http"

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendJSON(w, r, map[string]interface{}{
		"status":  "ok",
		"env":     api.Config.Env.String(),
		"records": api.Dataset.Len(),
	})
}
