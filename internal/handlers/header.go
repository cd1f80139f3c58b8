package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/haryokuncoro/portfolio-website/internal/components/header"
	"github.com/haryokuncoro/portfolio-website/internal/mount"
)

// ToggleHeader flips the panel and returns the re-rendered header.
func (h *Handlers) ToggleHeader(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	hdr, err := h.mounts.Toggle(token)
	h.respondHeader(w, r, token, hdr, err)
}

// CloseHeader collapses the panel and returns the re-rendered header.
func (h *Handlers) CloseHeader(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	hdr, err := h.mounts.Close(token)
	h.respondHeader(w, r, token, hdr, err)
}

// ActivateLink closes the panel after a navigation link was followed.
func (h *Handlers) ActivateLink(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest)
		return
	}

	hdr, found, err := h.mounts.ActivateLink(token, index)
	if err == nil && !found {
		h.logger.Warn("link index out of range", "index", index)
	}
	h.respondHeader(w, r, token, hdr, err)
}

// UnmountHeader discards a header when its page goes away.
func (h *Handlers) UnmountHeader(w http.ResponseWriter, r *http.Request) {
	err := h.mounts.Unmount(chi.URLParam(r, "token"))
	if err != nil && !errors.Is(err, mount.ErrNotMounted) {
		h.mountError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stylesheet serves the header's presentation rules.
func (h *Handlers) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(header.Stylesheet())
}

func (h *Handlers) respondHeader(w http.ResponseWriter, r *http.Request, token string, hdr *header.Header, err error) {
	if err != nil {
		h.mountError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := hdr.Component(headerAction(token)).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render header", "error", err)
	}
}

func (h *Handlers) mountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mount.ErrInvalidToken):
		h.renderError(w, http.StatusBadRequest)
	case errors.Is(err, mount.ErrNotMounted):
		h.renderError(w, http.StatusNotFound)
	default:
		h.logger.Error("header event failed", "error", err)
		h.renderError(w, http.StatusInternalServerError)
	}
}
