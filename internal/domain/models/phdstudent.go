// internal/domain/models/phdstudent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhdStudent records a doctoral student and the user supervising them.
type PhdStudent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Supervisor primitive.ObjectID `bson:"supervisor" json:"supervisor"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
