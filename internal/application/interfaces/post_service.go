package interfaces

import (
	"context"

	"github.com/google/uuid"

	"hub-service/internal/application/command"
	"hub-service/internal/application/query"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uuid.UUID, createCommand *command.CreatePostCommand) (*command.PostCommandResult, error)
	ListPosts(ctx context.Context) (*query.PostQueryListResult, error)
	FindPostById(ctx context.Context, id uuid.UUID) (*query.PostQueryResult, error)
	DeletePost(ctx context.Context, userID, id uuid.UUID) error
	LikePost(ctx context.Context, userID, id uuid.UUID) (*command.LikesCommandResult, error)
	UnlikePost(ctx context.Context, userID, id uuid.UUID) (*command.LikesCommandResult, error)
	AddComment(ctx context.Context, userID, id uuid.UUID, commentCommand *command.AddCommentCommand) (*command.CommentsCommandResult, error)
	DeleteComment(ctx context.Context, userID, id, commentID uuid.UUID) (*command.CommentsCommandResult, error)
}
