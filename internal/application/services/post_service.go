package services

import (
	"context"

	"github.com/google/uuid"

	"hub-service/internal/application/command"
	"hub-service/internal/application/interfaces"
	"hub-service/internal/application/mapper"
	"hub-service/internal/application/query"
	"hub-service/internal/apperrors"
	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
	"hub-service/internal/messaging"
)

var ErrTextRequired = apperrors.New(apperrors.KindValidation, "Text is required")

type PostService struct {
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	publisher messaging.Publisher
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	publisher messaging.Publisher,
) interfaces.PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *PostService) CreatePost(ctx context.Context, userID uuid.UUID, createCommand *command.CreatePostCommand) (*command.PostCommandResult, error) {
	author, err := s.findAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := entities.NewPost(author, createCommand.Text)
	if err != nil {
		return nil, ErrTextRequired
	}

	createdPost, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	publish(s.publisher, messaging.PostCreated, postEvent(createdPost.Id, userID))

	return &command.PostCommandResult{
		Result: mapper.NewPostResultFromEntity(createdPost),
	}, nil
}

func (s *PostService) ListPosts(ctx context.Context) (*query.PostQueryListResult, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.PostQueryListResult{
		Result: mapper.NewPostResults(posts),
	}, nil
}

func (s *PostService) FindPostById(ctx context.Context, id uuid.UUID) (*query.PostQueryResult, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &query.PostQueryResult{
		Result: mapper.NewPostResultFromEntity(post),
	}, nil
}

func (s *PostService) DeletePost(ctx context.Context, userID, id uuid.UUID) error {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return err
	}
	if err := entities.AuthorizeOwner(post, userID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.Id); err != nil {
		return err
	}

	publish(s.publisher, messaging.PostDeleted, postEvent(post.Id, userID))
	return nil
}

func (s *PostService) LikePost(ctx context.Context, userID, id uuid.UUID) (*command.LikesCommandResult, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.Like(userID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	publish(s.publisher, messaging.PostLiked, postEvent(post.Id, userID))

	return &command.LikesCommandResult{
		Result: mapper.NewLikeResults(post.Likes),
	}, nil
}

func (s *PostService) UnlikePost(ctx context.Context, userID, id uuid.UUID) (*command.LikesCommandResult, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.Unlike(userID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	publish(s.publisher, messaging.PostUnliked, postEvent(post.Id, userID))

	return &command.LikesCommandResult{
		Result: mapper.NewLikeResults(post.Likes),
	}, nil
}

func (s *PostService) AddComment(ctx context.Context, userID, id uuid.UUID, commentCommand *command.AddCommentCommand) (*command.CommentsCommandResult, error) {
	author, err := s.findAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comment, err := post.AddComment(author, commentCommand.Text)
	if err != nil {
		return nil, ErrTextRequired
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	event := postEvent(post.Id, userID)
	event.CommentID = comment.Id.String()
	publish(s.publisher, messaging.PostCommented, event)

	return &command.CommentsCommandResult{
		Result: mapper.NewCommentResults(post.Comments),
	}, nil
}

func (s *PostService) DeleteComment(ctx context.Context, userID, id, commentID uuid.UUID) (*command.CommentsCommandResult, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.RemoveComment(commentID, userID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	event := postEvent(post.Id, userID)
	event.CommentID = commentID.String()
	publish(s.publisher, messaging.PostCommentRemoved, event)

	return &command.CommentsCommandResult{
		Result: mapper.NewCommentResults(post.Comments),
	}, nil
}

func (s *PostService) findPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	post, err := s.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, entities.ErrPostNotFound
	}
	return post, nil
}

// findAuthor loads the caller so posts and comments can copy the current
// name and avatar.
func (s *PostService) findAuthor(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
