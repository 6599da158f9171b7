package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hub-service/internal/apperrors"
)

var (
	ErrPostNotFound    = apperrors.New(apperrors.KindNotFound, "Post Not Found!")
	ErrAlreadyLiked    = apperrors.New(apperrors.KindConflict, "Post already liked!")
	ErrNotLiked        = apperrors.New(apperrors.KindConflict, "Post has not yet been liked")
	ErrCommentNotFound = apperrors.New(apperrors.KindNotFound, "Comment does not exist!")
)

type Post struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Text      string
	Name      string
	Avatar    string
	Likes     []Like
	Comments  []Comment
	CreatedAt time.Time
}

type Like struct {
	Id     uuid.UUID
	UserId uuid.UUID
}

type Comment struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Text      string
	Name      string
	Avatar    string
	CreatedAt time.Time
}

// NewPost creates a post authored by user. Name and avatar are copied so
// the post keeps rendering after the author changes them.
func NewPost(author *User, text string) (*Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}
	return &Post{
		Id:        uuid.New(),
		UserId:    author.Id,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (p *Post) OwnerID() uuid.UUID {
	return p.UserId
}

func (c Comment) OwnerID() uuid.UUID {
	return c.UserId
}

func (l Like) OwnerID() uuid.UUID {
	return l.UserId
}

func (p *Post) likeIndex(userID uuid.UUID) int {
	for i, like := range p.Likes {
		if like.UserId == userID {
			return i
		}
	}
	return -1
}

// LikedBy reports whether userID already likes the post.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	return p.likeIndex(userID) >= 0
}

// Like prepends a like owned by userID. A user can like a post once.
func (p *Post) Like(userID uuid.UUID) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append([]Like{{Id: uuid.New(), UserId: userID}}, p.Likes...)
	return nil
}

// Unlike removes the like owned by userID.
func (p *Post) Unlike(userID uuid.UUID) error {
	i := p.likeIndex(userID)
	if i < 0 {
		return ErrNotLiked
	}
	p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
	return nil
}

// AddComment prepends a comment authored by user and returns it.
func (p *Post) AddComment(author *User, text string) (Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, errors.New("text must not be empty")
	}
	comment := Comment{
		Id:        uuid.New(),
		UserId:    author.Id,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	p.Comments = append([]Comment{comment}, p.Comments...)
	return comment, nil
}

// RemoveComment removes the comment with commentID if actor owns it.
func (p *Post) RemoveComment(commentID, actor uuid.UUID) error {
	for i, comment := range p.Comments {
		if comment.Id != commentID {
			continue
		}
		if err := AuthorizeOwner(comment, actor); err != nil {
			return err
		}
		p.Comments = append(p.Comments[:i:i], p.Comments[i+1:]...)
		return nil
	}
	return ErrCommentNotFound
}
