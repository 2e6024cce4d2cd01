// internal/domain/models/establishment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Establishment is the organizational root. Laboratories hang off it and its
// research director sees every team underneath when building dashboard
// filters.
type Establishment struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	ResearchDirectorID primitive.ObjectID `bson:"research_director_id" json:"research_director_id"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}
