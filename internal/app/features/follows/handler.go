// internal/app/features/follows/handler.go
package follows

import (
	followedstore "github.com/cedhub/cedhub/internal/app/store/followed"
	followedmembers "github.com/cedhub/cedhub/internal/app/store/queries/followedmembers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the followed-author relationship endpoints.
type Handler struct {
	Log      *zap.Logger
	Followed *followedstore.Store
	Members  *followedmembers.Query
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Followed: followedstore.New(db),
		Members:  followedmembers.New(db),
	}
}
