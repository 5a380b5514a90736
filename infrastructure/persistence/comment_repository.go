package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type CommentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) comments() *mongo.Collection {
	return r.db.Collection(CollComments)
}

// commentMetaStages joins owner projection and like counts onto comments.
// When caller is set an extra lookup marks the comments that user liked.
func commentMetaStages(caller *bson.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
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
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollLikes},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "comment"},
			{Key: "as", Value: "likes"},
		}}},
	}

	addFields := bson.D{
		{Key: "likeCount", Value: bson.D{{Key: "$size", Value: "$likes"}}},
	}
	project := bson.D{{Key: "likes", Value: 0}}

	if caller != nil {
		pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollLikes},
			{Key: "let", Value: bson.D{{Key: "commentId", Value: "$_id"}}},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$and", Value: bson.A{
							bson.D{{Key: "$eq", Value: bson.A{"$comment", "$$commentId"}}},
							bson.D{{Key: "$eq", Value: bson.A{"$owner", *caller}}},
						}},
					}},
				}}},
			}},
			{Key: "as", Value: "userLike"},
		}}})
		addFields = append(addFields, bson.E{Key: "isLiked", Value: bson.D{
			{Key: "$gt", Value: bson.A{bson.D{{Key: "$size", Value: "$userLike"}}, 0}},
		}})
		project = append(project, bson.E{Key: "userLike", Value: 0})
	} else {
		addFields = append(addFields, bson.E{Key: "isLiked", Value: false})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$addFields", Value: addFields}},
		bson.D{{Key: "$project", Value: project}},
	)
	return pipeline
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, caller *bson.ObjectID, page, limit int64) (*model.Page[model.CommentWithMeta], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
	}
	pipeline = append(pipeline, commentMetaStages(caller)...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})

	return Paginate[model.CommentWithMeta](ctx, r.comments(), pipeline, page, limit)
}

func (r *CommentRepository) Insert(ctx context.Context, comment *model.Comment) (bson.ObjectID, error) {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	res, err := r.comments().InsertOne(ctx, comment)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id := res.InsertedID.(bson.ObjectID)
	comment.ID = id
	return id, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := r.comments().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) GetWithOwner(ctx context.Context, id bson.ObjectID) (*model.CommentWithMeta, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, commentMetaStages(nil)...)

	cursor, err := r.comments().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []model.CommentWithMeta
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &out[0], nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	var comment model.Comment
	err := r.comments().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.comments().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
