// internal/domain/models/laboratory.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Laboratory belongs to an Establishment and is led by a head user.
// Abbreviation is the short code dashboards filter by.
type Laboratory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Abbreviation    string             `bson:"abbreviation" json:"abbreviation"`
	EstablishmentID primitive.ObjectID `bson:"establishment_id" json:"establishment_id"`
	HeadID          primitive.ObjectID `bson:"head_id" json:"head_id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
