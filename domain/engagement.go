package domain

import (
	"context"
	"slices"
	"time"
)

// DefaultAuthorPhoto is the avatar used when an author has no photo of their own
const DefaultAuthorPhoto = "https://i.ibb.co/4pDNDk1/avatar.png"

// Kind identifies which content collection an aggregate belongs to
type Kind string

const (
	KindBlog  Kind = "blog"
	KindVideo Kind = "video"
)

// Valid reports whether k is one of the known content kinds.
func (k Kind) Valid() bool {
	return k == KindBlog || k == KindVideo
}

func (k Kind) String() string {
	return string(k)
}

// Reply is a note attached to a specific Comment
type Reply struct {
	ID          string    `json:"_id"`
	CommentID   string    `json:"commentId"`
	Author      string    `json:"user"`
	AuthorPhoto string    `json:"photo"`
	Text        string    `json:"reply"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment is a note attached to an Aggregate. It owns its replies.
type Comment struct {
	ID          string    `json:"_id"`
	Author      string    `json:"user"`
	AuthorPhoto string    `json:"photo"`
	Text        string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	Replies     []Reply   `json:"replies"`
}

// Clone returns a deep copy of the comment
func (c Comment) Clone() Comment {
	c.Replies = slices.Clone(c.Replies)
	if c.Replies == nil {
		c.Replies = []Reply{}
	}
	return c
}

// Aggregate is the engagement state every content item owns:
// the like set, its denormalized counter and the comment tree.
type Aggregate struct {
	ID        string    `json:"_id"`
	Kind      Kind      `json:"kind"`
	OwnerID   string    `json:"user"`
	LikeCount int64     `json:"likeCount"`
	LikedBy   []string  `json:"likedBy"`
	Comments  []Comment `json:"comments"`
}

// Clone returns a deep copy of the aggregate
func (a Aggregate) Clone() Aggregate {
	a.LikedBy = slices.Clone(a.LikedBy)
	if a.LikedBy == nil {
		a.LikedBy = []string{}
	}
	comments := make([]Comment, len(a.Comments))
	for i := range a.Comments {
		comments[i] = a.Comments[i].Clone()
	}
	a.Comments = comments
	return a
}

// LikedByUser reports whether userID is in the like set
func (a Aggregate) LikedByUser(userID string) bool {
	return slices.Contains(a.LikedBy, userID)
}

// CommentByID returns the comment with the given id and whether it exists
func (a Aggregate) CommentByID(id string) (Comment, bool) {
	for i := range a.Comments {
		if a.Comments[i].ID == id {
			return a.Comments[i], true
		}
	}
	return Comment{}, false
}

// CommentInput carries the author-supplied fields of a comment or reply
type CommentInput struct {
	Author      string `validate:"required"`
	AuthorPhoto string `validate:"required"`
	Text        string `validate:"required"`
}

// IDGenerator produces globally unique opaque identifiers
type IDGenerator interface {
	NewID() (string, error)
	// Valid reports whether id is well formed
	Valid(id string) bool
}

// EngagementRepository is the persistence port of the engagement store.
// Every mutation is a single atomic, field-targeted command: implementations
// must never rewrite a whole aggregate to change one sub-document.
type EngagementRepository interface {
	// GetAggregate returns ErrNotFound if the item doesn't exist.
	GetAggregate(ctx context.Context, kind Kind, itemID string) (Aggregate, error)

	// FindByCommentID returns the aggregate owning the comment, or ErrNotFound.
	FindByCommentID(ctx context.Context, kind Kind, commentID string) (Aggregate, error)

	// AddLike adds userID to the like set and increments the counter.
	// Returns ErrNotFound or ErrAlreadyLiked without mutating anything.
	AddLike(ctx context.Context, kind Kind, itemID, userID string) (likeCount int64, err error)

	// RemoveLike removes userID from the like set and decrements the counter, floored at 0.
	// Returns ErrNotFound or ErrNotLiked without mutating anything.
	RemoveLike(ctx context.Context, kind Kind, itemID, userID string) (likeCount int64, err error)

	// PushComment appends c to the item's comments.
	PushComment(ctx context.Context, kind Kind, itemID string, c Comment) error

	// PushReply appends r to the replies of the comment commentID owned by itemID
	// and returns that comment after the push.
	PushReply(ctx context.Context, kind Kind, itemID, commentID string, r Reply) (Comment, error)

	// SetCommentText replaces the text of a comment and returns the owning item id
	// and the comment after the change.
	SetCommentText(ctx context.Context, kind Kind, commentID, text string) (itemID string, c Comment, err error)

	// PullComment removes a comment together with its replies and returns the owning item id.
	PullComment(ctx context.Context, kind Kind, commentID string) (itemID string, err error)
}

// EngagementUsecase is the engagement store bound to one content kind
type EngagementUsecase interface {
	LikeItem(ctx context.Context, itemID, userID string) (int64, error)
	UnlikeItem(ctx context.Context, itemID, userID string) (int64, error)
	CommentItem(ctx context.Context, itemID string, in CommentInput) (Comment, error)
	ReplyItem(ctx context.Context, itemID, commentID string, in CommentInput) (Comment, error)
	EditComment(ctx context.Context, commentID, text string) (Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	GetComment(ctx context.Context, commentID string) (Comment, error)
	GetAggregate(ctx context.Context, itemID string) (Aggregate, error)
}
