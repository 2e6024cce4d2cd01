// internal/app/features/users/create.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/cedhub/cedhub/internal/app/store/users"
	"github.com/cedhub/cedhub/internal/app/system/auth"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/mailer"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Roles     string `json:"roles"`
	CreatorID string `json:"creatorId"`
}

// Create handles POST /users: inserts the account with a temporary password
// and emails the credentials to the new user.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !httpapi.Decode(w, r, &req) {
		return
	}

	creatorID := creatorFrom(r, req.CreatorID)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Email, req.Password, req.Roles, creatorID)
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrBadRole):
			httpapi.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userstore.ErrDuplicateEmail):
			httpapi.Error(w, http.StatusConflict, err.Error())
		default:
			httpapi.Internal(w, h.Log, "create user", err)
		}
		return
	}

	email := mailer.BuildCredentialsEmail(u.Email, mailer.CredentialsEmailData{
		SiteName: h.SiteName,
		Email:    u.Email,
		Password: req.Password,
		LoginURL: h.LoginURL,
	})
	if err := h.Mail.Send(email); err != nil {
		httpapi.Internal(w, h.Log, "send credentials email", err)
		return
	}

	h.Log.Info("user created",
		zap.String("user_id", u.ID.Hex()),
		zap.Strings("roles", u.Roles))

	u.Password = ""
	httpapi.JSON(w, http.StatusOK, u)
}

// creatorFrom resolves the creating user: an explicit body field wins,
// otherwise the signed-in session user is recorded.
func creatorFrom(r *http.Request, bodyID string) *primitive.ObjectID {
	if bodyID != "" {
		if id, err := primitive.ObjectIDFromHex(bodyID); err == nil {
			return &id
		}
	}
	if su, ok := auth.CurrentUser(r); ok {
		if id, err := primitive.ObjectIDFromHex(su.ID); err == nil {
			return &id
		}
	}
	return nil
}
