package display

import (
	"log/slog"
	"net/http"
	"os"

	sloghttp "github.com/samber/slog-http"

	"github.com/kidzeivo/seating-designer/internal/db"
	templates "github.com/kidzeivo/seating-designer/internal/display/tmp"
)

// Display serves a read-only web view of the stored seating plans, meant
// for a screen at the venue or a quick check from a phone. It never
// writes, all editing goes through the designer API.
type Display struct {
	logger    *slog.Logger
	address   string
	store     db.VersionStore
	routes    map[string]http.Handler
	templates templates.TemplateHandler
}

func NewDisplay(
	logger *slog.Logger,
	address string,
	store db.VersionStore,
	templates templates.TemplateHandler,
) *Display {
	return &Display{
		logger:    logger,
		address:   address,
		store:     store,
		templates: templates,
	}
}

func (d *Display) Run() {
	mux := http.NewServeMux()

	loggerMW := sloghttp.NewWithConfig(
		d.logger, sloghttp.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
		},
	)

	d.routes = d.addRoutes()
	registerRoutes(mux, d.routes)

	srv := &http.Server{
		Addr:    d.address,
		Handler: loggerMW(mux),
	}

	d.logger.Info("listening on", "address", d.address)
	if err := srv.ListenAndServe(); err != nil {
		d.logger.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}
