package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type PlaylistRepository struct {
	db *mongo.Database
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) playlists() *mongo.Collection {
	return r.db.Collection(CollPlaylists)
}

func (r *PlaylistRepository) Insert(ctx context.Context, playlist *model.Playlist) (bson.ObjectID, error) {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	res, err := r.playlists().InsertOne(ctx, playlist)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id := res.InsertedID.(bson.ObjectID)
	playlist.ID = id
	return id, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.playlists().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// videoJoinStages resolves the ordered reference sequence into full video
// documents while preserving the sequence order, which a bare $lookup does
// not guarantee.
func videoJoinStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollVideos},
			{Key: "localField", Value: "videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "videos", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$videos"},
					{Key: "as", Value: "vid"},
					{Key: "in", Value: bson.D{
						{Key: "$arrayElemAt", Value: bson.A{
							bson.D{{Key: "$filter", Value: bson.D{
								{Key: "input", Value: "$videoDocs"},
								{Key: "as", Value: "doc"},
								{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$doc._id", "$$vid"}}}},
							}}},
							0,
						}},
					}},
				}},
			}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "videos", Value: bson.D{
				{Key: "$filter", Value: bson.D{
					{Key: "input", Value: "$videos"},
					{Key: "as", Value: "v"},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$v", nil}}}},
				}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "videoDocs", Value: 0}}}},
	}
}

func (r *PlaylistRepository) GetByIDWithVideos(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, videoJoinStages()...)

	cursor, err := r.playlists().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []model.PlaylistWithVideos
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &out[0], nil
}

func (r *PlaylistRepository) GetWatchHistory(ctx context.Context, owner bson.ObjectID) (*model.PlaylistWithVideos, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "name", Value: model.WatchHistoryName},
			{Key: "creator", Value: owner},
		}}},
	}
	pipeline = append(pipeline, videoJoinStages()...)

	cursor, err := r.playlists().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []model.PlaylistWithVideos
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &out[0], nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID, includePrivate bool) ([]model.PlaylistWithVideos, error) {
	match := bson.D{{Key: "creator", Value: owner}}
	if !includePrivate {
		match = append(match, bson.E{Key: "name", Value: bson.D{
			{Key: "$nin", Value: bson.A{model.WatchHistoryName, model.WatchLaterName}},
		}})
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, videoJoinStages()...)

	cursor, err := r.playlists().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []model.PlaylistWithVideos
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlaylistRepository) ListContainingVideo(ctx context.Context, owner, videoID bson.ObjectID) ([]model.Playlist, error) {
	cursor, err := r.playlists().Find(ctx, bson.D{
		{Key: "creator", Value: owner},
		{Key: "videos", Value: videoID},
	})
	if err != nil {
		return nil, err
	}
	var out []model.Playlist
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddVideo pushes videoID only when it is not already a member; the guard and
// the push are one update so two concurrent adds cannot both land.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	res, err := r.playlists().UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: playlistID},
			{Key: "videos", Value: bson.D{{Key: "$ne", Value: videoID}}},
		},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// No match is either a duplicate member or a playlist deleted since
		// the caller's existence check; tell the two apart before reporting.
		err := r.playlists().FindOne(ctx, bson.D{{Key: "_id", Value: playlistID}}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.NotFound("playlist")
		}
		if err != nil {
			return err
		}
		return model.Conflict("video already exists in the playlist")
	}
	return nil
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	res, err := r.playlists().UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: playlistID},
			{Key: "videos", Value: videoID},
		},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.NotFound("video in playlist")
	}
	return nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if name != "" {
		set = append(set, bson.E{Key: "name", Value: name})
	}
	if description != "" {
		set = append(set, bson.E{Key: "description", Value: description})
	}
	var playlist model.Playlist
	err := r.playlists().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.playlists().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PullFromWatchHistory is the first half of the watch-history update: one
// upsert that creates the playlist when absent and removes the viewed video
// from wherever it sits. A concurrent first view can lose the upsert race to
// the unique (creator, name) index; retry once against the winner's document.
func (r *PlaylistRepository) PullFromWatchHistory(ctx context.Context, owner, videoID bson.ObjectID) (*model.Playlist, error) {
	filter := bson.D{
		{Key: "name", Value: model.WatchHistoryName},
		{Key: "creator", Value: owner},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: time.Now().UTC()}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var playlist model.Playlist
	err := r.playlists().FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist)
	if mongo.IsDuplicateKeyError(err) {
		err = r.playlists().FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist)
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// PushFront inserts the viewed video at position 0. This is deliberately a
// second atomic step after PullFromWatchHistory; a crash in between leaves
// the playlist without the new head, which is degraded but never duplicated.
func (r *PlaylistRepository) PushFront(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	_, err := r.playlists().UpdateByID(ctx, playlistID, bson.D{
		{Key: "$push", Value: bson.D{
			{Key: "videos", Value: bson.D{
				{Key: "$each", Value: bson.A{videoID}},
				{Key: "$position", Value: 0},
			}},
		}},
	})
	return err
}
