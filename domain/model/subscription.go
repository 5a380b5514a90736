package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription links a subscriber to a channel. At most one per
// (subscriber, channel), enforced by a unique index.
type Subscription struct {
	ID         bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    bson.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
}
