package avatar

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tokoaplikasi/avatar-api/internal/service/catalog"
	"github.com/tokoaplikasi/avatar-api/internal/service/image"
	"github.com/tokoaplikasi/avatar-api/pkg/utils"
)

// Handler exposes the avatar catalog over HTTP.
type Handler struct {
	catalog *catalog.Service
	images  *image.Proxy
}

// New creates the avatar handler.
func New(catalogSvc *catalog.Service, images *image.Proxy) *Handler {
	return &Handler{
		catalog: catalogSvc,
		images:  images,
	}
}

// RegisterRoutes mounts the avatar routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/avatars", h.handleList)
	r.Get("/avatars/random", h.handleRandom)
	r.Get("/avatars/random/{count}", h.handleRandom)
	r.Get("/avatars/stats/info", h.handleStats)
	r.Get("/avatars/{name}", h.handleGetByName)
	r.Get("/avatars/{name}/image", h.handleImage)
}

// handleList serves the paginated, optionally filtered catalog listing.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	skip := 0
	if raw := r.URL.Query().Get("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid skip parameter")
			return
		}
		skip = parsed
	}

	limit := h.catalog.DefaultLimit()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	records, err := h.catalog.List(skip, limit, r.URL.Query().Get("search"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, records)
}

// handleGetByName serves a single avatar, falling back to partial match.
func (h *Handler) handleGetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	record, err := h.catalog.GetByName(name)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, fmt.Sprintf("Avatar '%s' not found", name))
		return
	}

	utils.RespondJSON(w, http.StatusOK, record)
}

// handleRandom serves a random sample; count defaults to 1 when the route
// carries none.
func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := chi.URLParam(r, "count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid count parameter")
			return
		}
		count = parsed
	}

	records, err := h.catalog.RandomSample(count)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Count must be at least 1")
		return
	}

	utils.RespondJSON(w, http.StatusOK, records)
}

// handleStats serves collection-level statistics.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.Stats())
}

// handleImage relays the avatar image bytes from the upstream file server.
func (h *Handler) handleImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := h.images.Fetch(r.Context(), name)
	if err != nil {
		if errors.Is(err, image.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		utils.RespondError(w, http.StatusBadGateway, "failed to fetch avatar image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
