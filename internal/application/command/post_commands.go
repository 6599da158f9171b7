package command

import "hub-service/internal/application/common"

type CreatePostCommand struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

type AddCommentCommand struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

type PostCommandResult struct {
	Result *common.PostResult `json:"result"`
}

type LikesCommandResult struct {
	Result []*common.LikeResult `json:"result"`
}

type CommentsCommandResult struct {
	Result []*common.CommentResult `json:"result"`
}
