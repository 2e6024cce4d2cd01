// internal/domain/models/followeduser.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowedUser is a tracked external author. AuthorID is the external
// bibliographic identifier and is unique per document. UserID optionally
// links the author to a local account when the author is also a platform
// user.
//
// Publications is the snapshot taken at the last check; callers diff its
// length against a freshly fetched count to detect new output.
type FollowedUser struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AuthorID     string              `bson:"authorId" json:"authorId"`
	UserID       *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name         string              `bson:"name,omitempty" json:"name,omitempty"`
	Publications []Publication       `bson:"publications" json:"publications"`
	FollowedAt   time.Time           `bson:"followed_at" json:"followed_at"`
}

// Publication is one entry in a followed author's publication snapshot.
type Publication struct {
	Title  string `bson:"title" json:"title"`
	Year   int    `bson:"year,omitempty" json:"year,omitempty"`
	Source string `bson:"source,omitempty" json:"source,omitempty"`
}
