// internal/app/features/profilepicture/handler.go
package profilepicture

import (
	"context"
	"errors"
	"net/http"
	"path"

	userstore "github.com/cedhub/cedhub/internal/app/store/users"
	"github.com/cedhub/cedhub/internal/app/system/auth"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/imagestore"
	"github.com/cedhub/cedhub/internal/app/system/limits"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves profile-picture uploads for the signed-in user.
type Handler struct {
	Log    *zap.Logger
	Users  *userstore.Store
	Images *imagestore.Store
}

func NewHandler(db *mongo.Database, images *imagestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Users:  userstore.New(db),
		Images: images,
	}
}

type uploadResponse struct {
	Message        string `json:"message"`
	ProfilePicture string `json:"profilePicture"`
}

// Upload handles POST /profile-picture: a multipart form with a "file" part.
// The previous picture is removed unless it is the shared default, the new
// one is stored as <userID><originalFileName>, and the account record is
// updated to point at it.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.Error(w, http.StatusUnauthorized, "sign-in required")
		return
	}
	userID, err := primitive.ObjectIDFromHex(su.ID)
	if err != nil {
		httpapi.Error(w, http.StatusUnauthorized, "invalid session user")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxProfileImageSize)
	if err := r.ParseMultipartForm(limits.MaxProfileImageSize); err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	old, err := h.Users.GetProfilePicture(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			httpapi.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "load current profile picture", err)
		return
	}

	// Removal failure is logged but does not block the upload: worst case
	// an orphan file stays on disk.
	if err := h.Images.Remove(old); err != nil {
		h.Log.Warn("remove old profile picture",
			zap.String("user_id", su.ID),
			zap.String("file", old),
			zap.Error(err))
	}

	stored, err := h.Images.Save(su.ID, header.Filename, file)
	if err != nil {
		httpapi.Internal(w, h.Log, "store profile picture", err)
		return
	}

	if err := h.Users.SetProfilePicture(ctx, userID, stored); err != nil {
		httpapi.Internal(w, h.Log, "update profile picture", err)
		return
	}

	httpapi.JSON(w, http.StatusOK, uploadResponse{
		Message:        "profile picture updated",
		ProfilePicture: path.Join(h.Images.URLPrefix(), stored),
	})
}
