package common

import (
	"time"

	"github.com/google/uuid"
)

type PostResult struct {
	Id        uuid.UUID        `json:"id"`
	User      uuid.UUID        `json:"user"`
	Text      string           `json:"text"`
	Name      string           `json:"name"`
	Avatar    string           `json:"avatar"`
	Likes     []*LikeResult    `json:"likes"`
	Comments  []*CommentResult `json:"comments"`
	CreatedAt time.Time        `json:"date"`
}

type LikeResult struct {
	Id   uuid.UUID `json:"id"`
	User uuid.UUID `json:"user"`
}

type CommentResult struct {
	Id        uuid.UUID `json:"id"`
	User      uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}
