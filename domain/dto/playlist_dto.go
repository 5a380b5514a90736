package dto

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}
