// internal/domain/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team belongs to a Laboratory, or stands alone under a head with no
// laboratory (LaboratoryID nil).
type Team struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Abbreviation string              `bson:"abbreviation" json:"abbreviation"`
	LaboratoryID *primitive.ObjectID `bson:"laboratory_id,omitempty" json:"laboratory_id,omitempty"`
	HeadID       primitive.ObjectID  `bson:"head_id" json:"head_id"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
}
