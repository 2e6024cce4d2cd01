// internal/app/features/users/password.go
package users

import (
	"context"
	"net/http"

	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type passwordRequest struct {
	Password string `json:"password"`
}

// UpdatePassword handles PUT /users/{id}/password.
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req passwordRequest
	if !httpapi.Decode(w, r, &req) {
		return
	}
	if req.Password == "" {
		httpapi.Error(w, http.StatusBadRequest, "password is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Users.UpdatePassword(ctx, id, req.Password); err != nil {
		httpapi.Internal(w, h.Log, "update password", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
