package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	avatarHandler "github.com/tokoaplikasi/avatar-api/internal/handler/avatar"
	middlewarePkg "github.com/tokoaplikasi/avatar-api/internal/middleware"
	avatarModel "github.com/tokoaplikasi/avatar-api/internal/model/avatar"
	"github.com/tokoaplikasi/avatar-api/internal/service/catalog"
	"github.com/tokoaplikasi/avatar-api/internal/service/image"
	"github.com/tokoaplikasi/avatar-api/pkg/utils"
)

const docsPage = `<!DOCTYPE html>
<html>
<head><title>Avatar API</title></head>
<body>
<h1>Avatar API</h1>
<ul>
<li><code>GET /health</code> — service status and loaded record count</li>
<li><code>GET /api/avatars?skip=&amp;limit=&amp;search=</code> — paginated listing with optional name filter</li>
<li><code>GET /api/avatars/{name}</code> — single avatar, exact then partial name match</li>
<li><code>GET /api/avatars/random/{count}</code> — random sample, count 1..50</li>
<li><code>GET /api/avatars/stats/info</code> — collection statistics</li>
<li><code>GET /api/avatars/{name}/image</code> — proxied image bytes</li>
</ul>
</body>
</html>
`

// NewRouter wires HTTP routes to the catalog services.
func NewRouter(store avatarModel.Store, catalogSvc *catalog.Service, images *image.Proxy) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusTemporaryRedirect)
	})

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(docsPage))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":         "healthy",
			"avatars_loaded": store.Len(),
		})
	})

	r.Route("/api", func(api chi.Router) {
		avatarHandler.New(catalogSvc, images).RegisterRoutes(api)
	})

	return r
}
