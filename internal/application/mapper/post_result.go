package mapper

import (
	"hub-service/internal/application/common"
	"hub-service/internal/domain/entities"
)

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	return &common.PostResult{
		Id:        post.Id,
		User:      post.UserId,
		Text:      post.Text,
		Name:      post.Name,
		Avatar:    post.Avatar,
		Likes:     NewLikeResults(post.Likes),
		Comments:  NewCommentResults(post.Comments),
		CreatedAt: post.CreatedAt,
	}
}

func NewPostResults(posts []*entities.Post) []*common.PostResult {
	results := make([]*common.PostResult, 0, len(posts))
	for _, post := range posts {
		results = append(results, NewPostResultFromEntity(post))
	}
	return results
}

func NewLikeResults(likes []entities.Like) []*common.LikeResult {
	results := make([]*common.LikeResult, 0, len(likes))
	for _, like := range likes {
		results = append(results, &common.LikeResult{Id: like.Id, User: like.UserId})
	}
	return results
}

func NewCommentResults(comments []entities.Comment) []*common.CommentResult {
	results := make([]*common.CommentResult, 0, len(comments))
	for _, c := range comments {
		results = append(results, &common.CommentResult{
			Id:        c.Id,
			User:      c.UserId,
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		})
	}
	return results
}
