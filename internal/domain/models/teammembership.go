// internal/domain/models/teammembership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMembership joins a user to a team. Membership history is soft-closed:
// leaving a team flips Active to false, documents are never deleted. Only
// Active=true rows count as current membership.
type TeamMembership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	TeamID    primitive.ObjectID `bson:"team_id" json:"team_id"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
