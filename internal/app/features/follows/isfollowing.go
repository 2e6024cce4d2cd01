// internal/app/features/follows/isfollowing.go
package follows

import (
	"context"
	"errors"
	"net/http"

	followedstore "github.com/cedhub/cedhub/internal/app/store/followed"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type isFollowingResponse struct {
	IsFollowing             bool `json:"isFollowing"`
	OldNumberOfPublications *int `json:"oldNumberOfPublications,omitempty"`
}

// IsFollowing handles GET /followed-users/{authorId}/is-following. A tracked
// author also reports how many publications were known at follow time, so the
// client can surface "new since you followed" counts.
func (h *Handler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "authorId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	fu, err := h.Followed.GetByAuthorID(ctx, authorID)
	if err != nil {
		if errors.Is(err, followedstore.ErrNotFollowing) {
			httpapi.JSON(w, http.StatusOK, isFollowingResponse{IsFollowing: false})
			return
		}
		httpapi.Internal(w, h.Log, "check following", err)
		return
	}

	n := len(fu.Publications)
	httpapi.JSON(w, http.StatusOK, isFollowingResponse{
		IsFollowing:             true,
		OldNumberOfPublications: &n,
	})
}
