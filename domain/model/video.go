package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is owned by exactly one user. Views only ever moves up.
type Video struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile" bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	// Handles issued by the asset host, needed to delete or replace media.
	PublicID          string        `json:"-" bson:"publicId,omitempty"`
	ThumbnailPublicID string        `json:"-" bson:"thumbnailPublicId,omitempty"`
	Duration          float64       `json:"duration" bson:"duration"`
	Views             int64         `json:"views" bson:"views"`
	IsPublished       bool          `json:"isPublished" bson:"isPublished"`
	Owner             bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt         time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// VideoWithOwner is a video joined with the projected owner document.
type VideoWithOwner struct {
	ID          bson.ObjectID `json:"_id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile" bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       PublicUser    `json:"owner" bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// VideoDetail attaches point-in-time counters to a joined video.
type VideoDetail struct {
	VideoWithOwner  `bson:",inline"`
	Likes           int64 `json:"likes"`
	SubscriberCount int64 `json:"subscriberCount"`
}

// ChannelStats is the dashboard aggregate for a channel.
type ChannelStats struct {
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalLikes       int64 `json:"totalLikes"`
}
