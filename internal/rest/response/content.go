package response

import (
	"github.com/Guyuepp/portfolio-cms/domain"
)

// DateTimeFormat is ISO 8601 with milliseconds
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

type Content struct {
	ID            string            `json:"_id"`
	User          string            `json:"user"`
	Photo         string            `json:"photo"`
	Name          string            `json:"name"`
	NameAr        string            `json:"name_ar"`
	SKU           []string          `json:"sku,omitempty"`
	Category      string            `json:"category"`
	CategoryAr    string            `json:"category_ar"`
	Code          string            `json:"code,omitempty"`
	Description   string            `json:"description"`
	DescriptionAr string            `json:"description_ar"`
	Tags          []string          `json:"tags"`
	TagsAr        []string          `json:"tags_ar"`
	Image         *domain.FileData  `json:"image,omitempty"`
	BlogItems     []domain.BlogItem `json:"blogItems,omitempty"`
	VideoURL      string            `json:"videoUrl,omitempty"`
	LikeCount     int64             `json:"likeCount"`
	LikedBy       []string          `json:"likedBy"`
	Comments      []Comment         `json:"comments"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NewContentFromDomain: Domain -> Response
func NewContentFromDomain(c *domain.ContentItem) Content {
	return Content{
		ID:            c.ID,
		User:          c.OwnerID,
		Photo:         c.Photo,
		Name:          c.Name,
		NameAr:        c.NameAr,
		SKU:           c.SKU,
		Category:      c.Category,
		CategoryAr:    c.CategoryAr,
		Code:          c.Code,
		Description:   c.Description,
		DescriptionAr: c.DescriptionAr,
		Tags:          nonNil(c.Tags),
		TagsAr:        nonNil(c.TagsAr),
		Image:         c.Image,
		BlogItems:     c.BlogItems,
		VideoURL:      c.VideoURL,
		LikeCount:     c.LikeCount,
		LikedBy:       nonNil(c.LikedBy),
		Comments:      newComments(c.Comments),
		CreatedAt:     c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:     c.UpdatedAt.Format(DateTimeFormat),
	}
}

func NewContentListFromDomain(items []domain.ContentItem) []Content {
	res := make([]Content, len(items))
	for i := range items {
		res[i] = NewContentFromDomain(&items[i])
	}
	return res
}
