package app

import (
	"log/slog"

	"github.com/vanshverma888/Galytix/internal/appconf"
	"github.com/vanshverma888/Galytix/internal/gwp"
)

// Application holds the dependencies shared by the HTTP handlers, helpers
// and middleware. Dataset is loaded before the Application is built and is
// never modified afterwards.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Dataset *gwp.Table
}

// New assembles an Application. A nil logger falls back to slog.Default.
func New(config appconf.Config, logger *slog.Logger, dataset *gwp.Table) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	return &Application{
		Config:  config,
		Logger:  logger,
		Dataset: dataset,
	}
}
