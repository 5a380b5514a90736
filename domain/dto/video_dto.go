package dto

import "go.mongodb.org/mongo-driver/v2/bson"

// VideoListQuery carries the video listing parameters. Defaults are applied
// in Normalize, matching the documented query contract.
type VideoListQuery struct {
	Page     int64  `form:"page"`
	Limit    int64  `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
	// All lifts the published-only clause. Only honored when the caller is
	// the owner named by UserID.
	All bool `form:"all"`

	// OwnerID is the parsed UserID, populated during validation.
	OwnerID *bson.ObjectID `form:"-"`
}

// Normalize fills defaults and clamps the paging window.
func (q *VideoListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortType != "asc" {
		q.SortType = "desc"
	}
}

type PublishVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type PageQuery struct {
	Page  int64 `form:"page"`
	Limit int64 `form:"limit"`
}

func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}
