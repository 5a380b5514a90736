package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readconcern"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// sortableVideoFields whitelists the fields a caller may sort a listing by.
var sortableVideoFields = map[string]struct{}{
	"createdAt": {},
	"updatedAt": {},
	"views":     {},
	"duration":  {},
	"title":     {},
}

type VideoRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewVideoRepository(client *mongo.Client, db *mongo.Database) repository.IVideo {
	return &VideoRepository{client: client, db: db}
}

func (r *VideoRepository) videos() *mongo.Collection {
	return r.db.Collection(CollVideos)
}

// ownerLookupStages joins the projected owner document onto each video. The
// $unwind makes it an inner join: a video whose owner record is gone drops
// out of the result set.
func ownerLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollUsers},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
	}
}

// buildListPipeline translates a normalized listing query into the
// match/join/sort stages ahead of pagination.
func buildListPipeline(q dto.VideoListQuery) mongo.Pipeline {
	match := bson.D{}
	if q.Query != "" {
		pattern := bson.Regex{Pattern: q.Query, Options: "i"}
		match = append(match, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}
	if q.OwnerID != nil {
		match = append(match, bson.E{Key: "owner", Value: *q.OwnerID})
	}
	if !q.All {
		match = append(match, bson.E{Key: "isPublished", Value: true})
	}

	sortBy := q.SortBy
	if _, ok := sortableVideoFields[sortBy]; !ok {
		sortBy = "createdAt"
	}
	direction := -1
	if q.SortType == "asc" {
		direction = 1
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: sortBy, Value: direction}}}})
	return pipeline
}

func (r *VideoRepository) List(ctx context.Context, q dto.VideoListQuery) (*model.Page[model.VideoWithOwner], error) {
	pipeline := buildListPipeline(q)
	page, err := Paginate[model.VideoWithOwner](ctx, r.videos(), pipeline, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	// The owner join is an inner join. A count mismatch against the bare
	// match means orphaned videos exist; that is a data-integrity problem
	// worth surfacing, never a video rendered with a null owner.
	matchOnly := mongo.Pipeline{pipeline[0]}
	if bare, cErr := countPipeline(ctx, r.videos(), matchOnly); cErr == nil && bare != page.TotalDocs {
		logger.GetLogger().WithField("orphaned", bare-page.TotalDocs).
			Error("videos excluded from listing because their owner record is missing")
	}
	return page, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := r.videos().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []model.VideoWithOwner
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &out[0], nil
}

func (r *VideoRepository) GetRaw(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.videos().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Insert(ctx context.Context, video *model.Video) (bson.ObjectID, error) {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now
	res, err := r.videos().InsertOne(ctx, video)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id := res.InsertedID.(bson.ObjectID)
	video.ID = id
	return id, nil
}

func (r *VideoRepository) UpdateMeta(ctx context.Context, video *model.Video) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: video.Title},
		{Key: "description", Value: video.Description},
		{Key: "videoFile", Value: video.VideoFile},
		{Key: "publicId", Value: video.PublicID},
		{Key: "thumbnail", Value: video.Thumbnail},
		{Key: "thumbnailPublicId", Value: video.ThumbnailPublicID},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	res, err := r.videos().UpdateByID(ctx, video.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *VideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (*model.Video, error) {
	var video model.Video
	err := r.videos().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: published},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// IncrementViews is a single atomic $inc, safe under concurrent viewers.
func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error) {
	var video model.Video
	err := r.videos().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if err != nil {
		return 0, err
	}
	return video.Views, nil
}

// DeleteCascade removes a video and all documents referencing it inside one
// snapshot transaction. Either every mutation lands or none does, including
// when the caller's context is cancelled mid-flight.
func (r *VideoRepository) DeleteCascade(ctx context.Context, id bson.ObjectID) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		res, err := r.db.Collection(CollVideos).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		pull := bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: id}}}}
		if _, err := r.db.Collection(CollPlaylists).UpdateMany(ctx, bson.D{{Key: "videos", Value: id}}, pull); err != nil {
			return nil, err
		}
		if _, err := r.db.Collection(CollLikes).DeleteMany(ctx, bson.D{{Key: "video", Value: id}}); err != nil {
			return nil, err
		}
		if _, err := r.db.Collection(CollComments).DeleteMany(ctx, bson.D{{Key: "video", Value: id}}); err != nil {
			return nil, err
		}
		// Legacy denormalized watch-history list on users; the playlist is
		// canonical but the shim must not keep a dangling reference.
		legacyPull := bson.D{{Key: "$pull", Value: bson.D{{Key: "watchHistory", Value: id}}}}
		if _, err := r.db.Collection(CollUsers).UpdateMany(ctx, bson.D{{Key: "watchHistory", Value: id}}, legacyPull); err != nil {
			return nil, err
		}
		return nil, nil
	}, txnOpts)

	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		logger.GetLogger().WithField("error", err).WithField("videoId", id.Hex()).
			Error("video cascade delete aborted, all document mutations rolled back")
	}
	return err
}

func (r *VideoRepository) CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	return r.videos().CountDocuments(ctx, bson.D{{Key: "owner", Value: owner}})
}

func (r *VideoRepository) TotalViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}
	cursor, err := r.videos().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var out []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].TotalViews, nil
}
