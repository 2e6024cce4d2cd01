// internal/app/features/follows/follow.go
package follows

import (
	"context"
	"errors"
	"net/http"

	followedstore "github.com/cedhub/cedhub/internal/app/store/followed"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/cedhub/cedhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type followRequest struct {
	AuthorID     string               `json:"authorId"`
	Name         string               `json:"name"`
	UserID       string               `json:"userId"`
	Publications []models.Publication `json:"publications"`
}

// Follow handles POST /followed-users. Following an author that is already
// tracked answers 409.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if !httpapi.Decode(w, r, &req) {
		return
	}
	if req.AuthorID == "" {
		httpapi.Error(w, http.StatusBadRequest, "authorId is required")
		return
	}

	fu := models.FollowedUser{
		AuthorID:     req.AuthorID,
		Name:         req.Name,
		Publications: req.Publications,
	}
	if req.UserID != "" {
		uid, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			httpapi.Error(w, http.StatusBadRequest, "invalid userId")
			return
		}
		fu.UserID = &uid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Followed.Follow(ctx, fu)
	if err != nil {
		if errors.Is(err, followedstore.ErrAlreadyFollowing) {
			httpapi.Error(w, http.StatusConflict, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "follow author", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, created)
}

type updateFollowRequest struct {
	Name         *string              `json:"name"`
	UserID       *string              `json:"userId"`
	Publications []models.Publication `json:"publications"`
}

// Update handles PUT /followed-users/{authorId}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "authorId")

	var req updateFollowRequest
	if !httpapi.Decode(w, r, &req) {
		return
	}

	p := followedstore.Patch{
		Name:         req.Name,
		Publications: req.Publications,
	}
	if req.UserID != nil {
		uid, err := primitive.ObjectIDFromHex(*req.UserID)
		if err != nil {
			httpapi.Error(w, http.StatusBadRequest, "invalid userId")
			return
		}
		p.UserID = &uid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Followed.ApplyPatch(ctx, authorID, p); err != nil {
		if errors.Is(err, followedstore.ErrNotFollowing) {
			httpapi.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "update followed author", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, map[string]string{"message": "followed user updated"})
}

// Unfollow handles DELETE /followed-users/{authorId}.
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "authorId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Followed.Unfollow(ctx, authorID); err != nil {
		if errors.Is(err, followedstore.ErrNotFollowing) {
			httpapi.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "unfollow author", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, map[string]string{"message": "author unfollowed"})
}
