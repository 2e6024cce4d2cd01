// internal/app/features/users/handler.go
package users

import (
	userprofile "github.com/cedhub/cedhub/internal/app/store/queries/userprofile"
	userstore "github.com/cedhub/cedhub/internal/app/store/users"
	"github.com/cedhub/cedhub/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for account lifecycle operations.
type Handler struct {
	Log     *zap.Logger
	Mail    mailer.Sender
	Users   *userstore.Store
	Profile *userprofile.Query

	// SiteName and LoginURL feed the credentials email.
	SiteName string
	LoginURL string
}

func NewHandler(db *mongo.Database, mail mailer.Sender, siteName, loginURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Mail:     mail,
		Users:    userstore.New(db),
		Profile:  userprofile.New(db),
		SiteName: siteName,
		LoginURL: loginURL,
	}
}
