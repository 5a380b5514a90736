package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
)

// Paginate runs pipeline against coll and returns one page of decoded
// documents. The skip/limit window is appended after every caller-supplied
// stage; the total is a separate counting pass over the unpaginated pipeline,
// so totals stay correct for any requested page. A page past the end yields
// empty docs, never an error.
func Paginate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, page, limit int64) (*model.Page[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	paged := make(mongo.Pipeline, 0, len(pipeline)+2)
	paged = append(paged, pipeline...)
	paged = append(paged,
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := coll.Aggregate(ctx, paged)
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	total, err := countPipeline(ctx, coll, pipeline)
	if err != nil {
		return nil, err
	}

	return model.NewPage(docs, total, page, limit), nil
}

func countPipeline(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) (int64, error) {
	counting := make(mongo.Pipeline, 0, len(pipeline)+1)
	counting = append(counting, pipeline...)
	counting = append(counting, bson.D{{Key: "$count", Value: "totalDocs"}})

	cursor, err := coll.Aggregate(ctx, counting)
	if err != nil {
		return 0, err
	}
	var out []struct {
		TotalDocs int64 `bson:"totalDocs"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		// $count emits nothing when the pipeline matches nothing.
		return 0, nil
	}
	return out[0].TotalDocs, nil
}
