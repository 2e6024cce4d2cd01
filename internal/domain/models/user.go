// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account on the platform: CED heads, laboratory heads, and
// researchers.
//
// NOTE:
//   - Team membership is not embedded on User. Use the team_memberships
//     collection to discover a user's teams.
//   - GeneratedPassword holds the temporary plaintext credential that is
//     emailed to a freshly created account. It is cleared the first time the
//     user updates their profile.
type User struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Email             string              `bson:"email" json:"email"`
	Password          string              `bson:"password,omitempty" json:"-"`
	GeneratedPassword string              `bson:"generatedPassword,omitempty" json:"generatedPassword,omitempty"`
	Roles             []string            `bson:"roles" json:"roles"`
	HasConfirmed      bool                `bson:"hasConfirmed" json:"hasConfirmed"`
	FirstName         string              `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName          string              `bson:"lastName,omitempty" json:"lastName,omitempty"`
	ProfilePicture    string              `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreatorID         *primitive.ObjectID `bson:"creatorId,omitempty" json:"creatorId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
