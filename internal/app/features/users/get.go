// internal/app/features/users/get.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/cedhub/cedhub/internal/app/store/users"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Get handles GET /users/{id}: the account record together with the
// laboratories and teams it heads, its active memberships, supervised PhD
// students, and any followed-user record linked to the account.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	p, err := h.Profile.Get(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			httpapi.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "load user profile", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, p)
}
