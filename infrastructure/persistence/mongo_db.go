package persistence

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names. All repositories address collections through these so a
// pipeline $lookup never drifts from the actual collection name.
const (
	CollUsers         = "users"
	CollVideos        = "videos"
	CollComments      = "comments"
	CollLikes         = "likes"
	CollPlaylists     = "playlists"
	CollSubscriptions = "subscriptions"
	CollTweets        = "tweets"
)

// NewMongoDb builds a connected client. Credentials are optional for local
// development instances.
func NewMongoDb(host, port, user, password, name string) (*mongo.Client, error) {
	var uri string
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin", user, password, host, port, name)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s/%s", host, port, name)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}
	return client, nil
}
