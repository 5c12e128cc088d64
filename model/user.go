package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the owning application's user document. Only existence is checked
// here, so most fields are left out.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
