package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haryokuncoro/portfolio-website/internal/config"
	"github.com/haryokuncoro/portfolio-website/internal/mount"
	"github.com/haryokuncoro/portfolio-website/internal/web"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config *config.Config
	mounts *mount.Registry
	logger *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, mounts *mount.Registry, logger *slog.Logger) *Handlers {
	return &Handlers{
		config: cfg,
		mounts: mounts,
		logger: logger,
	}
}

// Register mounts the page and header routes on r.
func (h *Handlers) Register(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/static/header.css", h.Stylesheet)
	r.Handle("/static/*", http.StripPrefix("/static/", web.FileServer()))

	r.Route("/headers/{token}", func(r chi.Router) {
		r.Post("/toggle", h.ToggleHeader)
		r.Post("/close", h.CloseHeader)
		r.Post("/links/{index}", h.ActivateLink)
		r.Delete("/", h.UnmountHeader)
	})
}

func (h *Handlers) renderError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
