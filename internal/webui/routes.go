package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vanshverma888/Galytix/internal/app"
)

// WebUI serves the HTML debug pages.
type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/dataset", webUI.debugIndexHandler)
}
