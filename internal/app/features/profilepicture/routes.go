// internal/app/features/profilepicture/routes.go
package profilepicture

import (
	"github.com/cedhub/cedhub/internal/app/system/auth"
	"github.com/cedhub/cedhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the upload endpoint. Uploads are rate limited per client IP
// on top of the session requirement.
func Routes(h *Handler, uploads *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Use(ratelimit.ByClientIP(uploads))
	r.Use(auth.RequireSignedIn)

	r.Post("/", h.Upload)

	return r
}
