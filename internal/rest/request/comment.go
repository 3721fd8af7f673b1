package request

import "github.com/Guyuepp/portfolio-cms/domain"

type Comment struct {
	Comment   string `json:"comment" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	UserPhoto string `json:"userPhoto" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.CommentInput {
	return domain.CommentInput{
		Author:      r.UserName,
		AuthorPhoto: r.UserPhoto,
		Text:        r.Comment,
	}
}

type Reply struct {
	Reply     string `json:"reply" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	UserPhoto string `json:"userPhoto" binding:"required"`
}

func (r *Reply) ToDomain() domain.CommentInput {
	return domain.CommentInput{
		Author:      r.UserName,
		AuthorPhoto: r.UserPhoto,
		Text:        r.Reply,
	}
}

type EditComment struct {
	Comment string `json:"comment" binding:"required"`
}
