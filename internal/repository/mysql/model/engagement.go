package model

import (
	"time"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// ItemLike is one member of an item's like set. The composite key makes a
// second like by the same user a duplicate-key error.
type ItemLike struct {
	ItemID    string    `gorm:"primaryKey;column:item_id;type:varchar(36)"`
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(64)"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (ItemLike) TableName() string {
	return "item_likes"
}

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	ItemID    string    `gorm:"column:item_id;type:varchar(36);not null;index"`
	Kind      string    `gorm:"type:varchar(16);not null"`
	Author    string    `gorm:"column:user;type:varchar(255);not null"`
	Photo     string    `gorm:"type:varchar(512);not null"`
	Text      string    `gorm:"column:comment;type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(kind domain.Kind, itemID string, c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ItemID:    itemID,
		Kind:      kind.String(),
		Author:    c.Author,
		Photo:     c.AuthorPhoto,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:          m.ID,
		Author:      m.Author,
		AuthorPhoto: m.Photo,
		Text:        m.Text,
		CreatedAt:   m.CreatedAt,
		Replies:     []domain.Reply{},
	}
}

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(36);not null;index"`
	ItemID    string    `gorm:"column:item_id;type:varchar(36);not null;index"`
	Author    string    `gorm:"column:user;type:varchar(255);not null"`
	Photo     string    `gorm:"type:varchar(512);not null"`
	Text      string    `gorm:"column:reply;type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
	UpdatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(itemID string, r *domain.Reply) *Reply {
	return &Reply{
		ID:        r.ID,
		CommentID: r.CommentID,
		ItemID:    itemID,
		Author:    r.Author,
		Photo:     r.AuthorPhoto,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:          m.ID,
		CommentID:   m.CommentID,
		Author:      m.Author,
		AuthorPhoto: m.Photo,
		Text:        m.Text,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
