// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/roles"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/cedhub/cedhub/internal/domain/models"
)

// List handles GET /users: every account, password excluded.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	all, err := h.Users.ListAll(ctx)
	if err != nil {
		httpapi.Internal(w, h.Log, "list users", err)
		return
	}
	httpapi.JSON(w, http.StatusOK, all)
}

// ListLaboratoryHeads handles GET /users/laboratory-heads.
func (h *Handler) ListLaboratoryHeads(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	heads, err := h.Users.ListByRole(ctx, roles.LaboratoryHead)
	if err != nil {
		httpapi.Internal(w, h.Log, "list laboratory heads", err)
		return
	}
	httpapi.JSON(w, http.StatusOK, heads)
}

// ListResearchers handles GET /users/researchers. The platform has always
// fetched the full user list and filtered by role afterwards; keep that
// behavior so the two listings stay comparable.
func (h *Handler) ListResearchers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	all, err := h.Users.ListAll(ctx)
	if err != nil {
		httpapi.Internal(w, h.Log, "list researchers", err)
		return
	}

	researchers := []models.User{}
	for _, u := range all {
		if u.HasRole(roles.Researcher) {
			researchers = append(researchers, u)
		}
	}
	httpapi.JSON(w, http.StatusOK, researchers)
}
