// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/laboratory-heads", h.ListLaboratoryHeads)
	r.Get("/researchers", h.ListResearchers)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/password", h.UpdatePassword)
	r.Delete("/{id}", h.Delete)

	return r
}
