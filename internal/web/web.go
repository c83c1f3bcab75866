// Package web serves the single page that drives the form session API.
package web

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed static/index.html
var page []byte

// RegisterRoutes mounts the page at the router root.
func RegisterRoutes(router chi.Router, logger *zap.Logger) {
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if _, err := w.Write(page); err != nil {
			logger.Debug("failed to write page", zap.Error(err))
		}
	})
}
