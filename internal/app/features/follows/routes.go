// internal/app/features/follows/routes.go
package follows

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Follow)
	r.Get("/", h.List)
	r.Put("/{authorId}", h.Update)
	r.Delete("/{authorId}", h.Unfollow)
	r.Get("/{authorId}/is-following", h.IsFollowing)

	return r
}
