package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Content   string        `json:"content" bson:"content"`
	Video     bson.ObjectID `json:"video" bson:"video"`
	Owner     bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// CommentWithMeta is a comment joined with its owner projection, like count
// and whether the calling user liked it.
type CommentWithMeta struct {
	ID        bson.ObjectID `json:"_id" bson:"_id"`
	Content   string        `json:"content" bson:"content"`
	Video     bson.ObjectID `json:"video" bson:"video"`
	Owner     PublicUser    `json:"owner" bson:"owner"`
	LikeCount int64         `json:"likeCount" bson:"likeCount"`
	IsLiked   bool          `json:"isLiked" bson:"isLiked"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
