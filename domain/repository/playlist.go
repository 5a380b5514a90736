package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type IPlaylist interface {
	Insert(ctx context.Context, playlist *model.Playlist) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	GetByIDWithVideos(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error)
	// ListByOwner lists owner's playlists joined with video documents. The
	// by-convention watch lists are included only when includePrivate is set.
	ListByOwner(ctx context.Context, owner bson.ObjectID, includePrivate bool) ([]model.PlaylistWithVideos, error)
	ListContainingVideo(ctx context.Context, owner, videoID bson.ObjectID) ([]model.Playlist, error)
	// AddVideo appends videoID, failing with a conflict when it is already a
	// member. The membership check and the push are one guarded update.
	AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error
	RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error
	Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	// PullFromWatchHistory locates (creating if absent) the owner's
	// "Watch History" playlist and removes videoID from the sequence, all in
	// a single upsert. PushFront then inserts at position 0 as a second
	// atomic step.
	PullFromWatchHistory(ctx context.Context, owner, videoID bson.ObjectID) (*model.Playlist, error)
	PushFront(ctx context.Context, playlistID, videoID bson.ObjectID) error

	// GetWatchHistory fetches owner's "Watch History" playlist joined with
	// video documents in sequence order.
	GetWatchHistory(ctx context.Context, owner bson.ObjectID) (*model.PlaylistWithVideos, error)
}
