package model

import (
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User holds identity and profile attributes. Password and RefreshToken are
// owned by the auth layer and never serialized into responses.
type User struct {
	ID         bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Username   string        `json:"username" bson:"username"`
	Email      string        `json:"email" bson:"email"`
	FullName   string        `json:"fullname" bson:"fullname"`
	Avatar     string        `json:"avatar" bson:"avatar"`
	CoverImage string        `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	// Handles issued by the asset host, needed to replace profile images.
	AvatarPublicID     string   `json:"-" bson:"avatarPublicId,omitempty"`
	CoverImagePublicID string   `json:"-" bson:"coverImagePublicId,omitempty"`
	Description        string   `json:"description,omitempty" bson:"description,omitempty"`
	Links              []string `json:"links,omitempty" bson:"links,omitempty"`
	Password           string   `json:"-" bson:"password"`
	RefreshToken       string   `json:"-" bson:"refreshToken,omitempty"`
	// WatchHistory is a legacy reference list superseded by the "Watch History"
	// playlist. Kept as a one-way migration shim; the playlist is the source of truth.
	WatchHistory []bson.ObjectID `json:"-" bson:"watchHistory,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// PublicUser is the projected subset of owner fields joined into videos and comments.
type PublicUser struct {
	ID       bson.ObjectID `json:"_id" bson:"_id"`
	Username string        `json:"username" bson:"username"`
	Avatar   string        `json:"avatar" bson:"avatar"`
}

type UserClaims struct {
	UserName string `json:"userName"`
	jwt.StandardClaims
}

type ReqLogin struct {
	UserName string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReqRegister struct {
	UserName string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	FullName string `form:"fullname" binding:"required"`
	Password string `form:"password" binding:"required"`
}
