// internal/app/features/users/update.go
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

type updateRequest struct {
	Email          *string `json:"email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	ProfilePicture *string `json:"profilePicture"`
}

type updateResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
	HasConfirmed  bool  `json:"hasConfirmed"`
}

// Update handles PUT /users/{id}: merges the allow-listed profile fields.
// Any update confirms the account and clears the temporary password.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateRequest
	if !httpapi.Decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	modified, err := h.Users.ApplyPatch(ctx, id, userstore.Patch{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpapi.Error(w, http.StatusConflict, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "update user", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, updateResponse{
		ModifiedCount: modified,
		HasConfirmed:  true,
	})
}
