package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like is a join entity: exactly one of Video, Comment or Tweet is set.
// Uniqueness per (owner, target) is enforced by partial unique indexes, not
// by application logic.
type Like struct {
	ID        bson.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Video     *bson.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *bson.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *bson.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	Owner     bson.ObjectID  `json:"owner" bson:"owner"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// LikeTarget names the entity kind a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)
