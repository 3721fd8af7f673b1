package response

import "github.com/Guyuepp/portfolio-cms/domain"

type Reply struct {
	ID        string `json:"_id"`
	CommentID string `json:"commentId"`
	User      string `json:"user"`
	Photo     string `json:"photo"`
	Reply     string `json:"reply"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Comment struct {
	ID        string  `json:"_id"`
	User      string  `json:"user"`
	Photo     string  `json:"photo"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
	Replies   []Reply `json:"replies"`
}

func NewReplyFromDomain(r *domain.Reply) Reply {
	return Reply{
		ID:        r.ID,
		CommentID: r.CommentID,
		User:      r.Author,
		Photo:     r.AuthorPhoto,
		Reply:     r.Text,
		CreatedAt: r.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: r.UpdatedAt.Format(DateTimeFormat),
	}
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	replies := make([]Reply, len(c.Replies))
	for i := range c.Replies {
		replies[i] = NewReplyFromDomain(&c.Replies[i])
	}
	return Comment{
		ID:        c.ID,
		User:      c.Author,
		Photo:     c.AuthorPhoto,
		Comment:   c.Text,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		Replies:   replies,
	}
}

func newComments(comments []domain.Comment) []Comment {
	res := make([]Comment, len(comments))
	for i := range comments {
		res[i] = NewCommentFromDomain(&comments[i])
	}
	return res
}

// Engagement is the like and comment view of one item
type Engagement struct {
	ID        string    `json:"_id"`
	LikeCount int64     `json:"likeCount"`
	LikedBy   []string  `json:"likedBy"`
	Comments  []Comment `json:"comments"`
}

func NewEngagementFromDomain(a *domain.Aggregate) Engagement {
	likedBy := a.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return Engagement{
		ID:        a.ID,
		LikeCount: a.LikeCount,
		LikedBy:   likedBy,
		Comments:  newComments(a.Comments),
	}
}
