package handlers

import (
	"net/http"
	"net/url"

	"github.com/haryokuncoro/portfolio-website/internal/templates/pages"
)

// Home renders the page shell with a freshly mounted header.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	token, hdr, err := h.mounts.Mount(h.config.Site.HeaderOptions()...)
	if err != nil {
		h.logger.Error("failed to mount header", "error", err)
		h.renderError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	page := pages.Home(h.config.Site.PageTitle(), hdr.Component(headerAction(token)), pages.DefaultSections)
	if err := page.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}

func headerAction(token string) string {
	return "/headers/" + url.PathEscape(token)
}
