package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// WatchHistoryName and WatchLaterName identify the two by-convention playlists.
// They are matched by name, not by a type tag.
const (
	WatchHistoryName = "Watch History"
	WatchLaterName   = "Watch Later"
)

// IsPrivateList reports whether name is one of the by-convention playlists.
// These hold viewing habits and are only ever readable by their creator.
func IsPrivateList(name string) bool {
	return name == WatchHistoryName || name == WatchLaterName
}

// Playlist holds an ordered sequence of video references. A video id appears
// at most once in Videos.
type Playlist struct {
	ID          bson.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Videos      []bson.ObjectID `json:"videos" bson:"videos"`
	Creator     bson.ObjectID   `json:"creator" bson:"creator"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistWithVideos is a playlist joined with full video documents, in
// sequence order.
type PlaylistWithVideos struct {
	ID          bson.ObjectID `json:"_id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Videos      []Video       `json:"videos" bson:"videos"`
	Creator     bson.ObjectID `json:"creator" bson:"creator"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}
