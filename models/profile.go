package models

import (
	"time"

	"dialin/engine"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrewProfile — a user's saved equipment setup. Beans and targets change per
// session, so only the hardware half is persisted; computed recipes are
// never stored.
type BrewProfile struct {
	ID        primitive.ObjectID      `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID      `bson:"ownerId"       json:"ownerId"`
	Name      string                  `bson:"name"          json:"name"`
	Equipment engine.EquipmentProfile `bson:"equipment"     json:"equipment"`
	Notes     string                  `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time               `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time               `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
