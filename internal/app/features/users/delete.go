// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Delete handles DELETE /users/{id}. Deleting an unknown id is not an
// error; the response reports a deletedCount of 0.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	deleted, err := h.Users.Delete(ctx, id)
	if err != nil {
		httpapi.Internal(w, h.Log, "delete user", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, deleteResponse{DeletedCount: deleted})
}
