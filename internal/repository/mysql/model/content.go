package model

import (
	"time"

	"github.com/Guyuepp/portfolio-cms/domain"
)

type ContentItem struct {
	ID            string            `gorm:"primaryKey;type:varchar(36)"`
	Kind          string            `gorm:"type:varchar(16);not null;index:idx_kind_created,priority:1;index:idx_kind_category,priority:1"`
	OwnerID       string            `gorm:"column:user_id;type:varchar(64)"`
	Photo         string            `gorm:"type:varchar(512)"`
	Name          string            `gorm:"type:varchar(255);not null"`
	NameAr        string            `gorm:"type:varchar(255)"`
	SKU           []string          `gorm:"column:sku;serializer:json;type:json"`
	Category      string            `gorm:"type:varchar(128);index:idx_kind_category,priority:2"`
	CategoryAr    string            `gorm:"type:varchar(128)"`
	Code          string            `gorm:"type:longtext"`
	Description   string            `gorm:"type:text"`
	DescriptionAr string            `gorm:"type:text"`
	Tags          []string          `gorm:"serializer:json;type:json"`
	TagsAr        []string          `gorm:"serializer:json;type:json"`
	Image         *domain.FileData  `gorm:"serializer:json;type:json"`
	BlogItems     []domain.BlogItem `gorm:"serializer:json;type:json"`
	VideoURL      string            `gorm:"column:video_url;type:varchar(512)"`
	LikeCount     int64             `gorm:"column:like_count;not null;default:0"`
	CreatedAt     time.Time         `gorm:"type:datetime(3);index:idx_kind_created,priority:2"`
	UpdatedAt     time.Time         `gorm:"type:datetime(3)"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// UpdatableColumns are the descriptive columns an Update may overwrite
var UpdatableColumns = []string{
	"photo", "name", "name_ar", "sku", "category", "category_ar", "code",
	"description", "description_ar", "tags", "tags_ar", "image", "blog_items",
	"video_url", "updated_at",
}

// ToDomain converts the row; likes and comments are filled in separately.
func (m *ContentItem) ToDomain() domain.ContentItem {
	return domain.ContentItem{
		Aggregate: domain.Aggregate{
			ID:        m.ID,
			Kind:      domain.Kind(m.Kind),
			OwnerID:   m.OwnerID,
			LikeCount: m.LikeCount,
			LikedBy:   []string{},
			Comments:  []domain.Comment{},
		},
		Photo:         m.Photo,
		Name:          m.Name,
		NameAr:        m.NameAr,
		SKU:           m.SKU,
		Category:      m.Category,
		CategoryAr:    m.CategoryAr,
		Code:          m.Code,
		Description:   m.Description,
		DescriptionAr: m.DescriptionAr,
		Tags:          m.Tags,
		TagsAr:        m.TagsAr,
		Image:         m.Image,
		BlogItems:     m.BlogItems,
		VideoURL:      m.VideoURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// NewContentItemFromDomain never carries engagement state
func NewContentItemFromDomain(c *domain.ContentItem) *ContentItem {
	return &ContentItem{
		ID:            c.ID,
		Kind:          c.Kind.String(),
		OwnerID:       c.OwnerID,
		Photo:         c.Photo,
		Name:          c.Name,
		NameAr:        c.NameAr,
		SKU:           c.SKU,
		Category:      c.Category,
		CategoryAr:    c.CategoryAr,
		Code:          c.Code,
		Description:   c.Description,
		DescriptionAr: c.DescriptionAr,
		Tags:          c.Tags,
		TagsAr:        c.TagsAr,
		Image:         c.Image,
		BlogItems:     c.BlogItems,
		VideoURL:      c.VideoURL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
