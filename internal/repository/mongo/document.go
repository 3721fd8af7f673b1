package mongo

import (
	"time"

	"github.com/Guyuepp/portfolio-cms/domain"
)

type fileDocument struct {
	FileName string `bson:"fileName"`
	FilePath string `bson:"filePath"`
	FileType string `bson:"fileType"`
	FileSize string `bson:"fileSize"`
}

type blogItemDocument struct {
	Name          string        `bson:"name"`
	NameAr        string        `bson:"name_ar"`
	Description   string        `bson:"description"`
	DescriptionAr string        `bson:"description_ar"`
	Code          string        `bson:"code"`
	Image         *fileDocument `bson:"image,omitempty"`
	ImagePreview  string        `bson:"imagePreview"`
}

type replyDocument struct {
	ID        string    `bson:"_id"`
	CommentID string    `bson:"commentId"`
	Author    string    `bson:"user"`
	Photo     string    `bson:"photo"`
	Text      string    `bson:"reply"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type commentDocument struct {
	ID        string          `bson:"_id"`
	Author    string          `bson:"user"`
	Photo     string          `bson:"photo"`
	Text      string          `bson:"comment"`
	CreatedAt time.Time       `bson:"createdAt"`
	Replies   []replyDocument `bson:"replies"`
}

// itemDocument is the stored shape of a content item. likedBy, comments and
// every replies array are always written as arrays, never null, so the
// $push updates can target them.
type itemDocument struct {
	ID            string             `bson:"_id"`
	OwnerID       string             `bson:"user,omitempty"`
	Photo         string             `bson:"photo"`
	Name          string             `bson:"name"`
	NameAr        string             `bson:"name_ar"`
	SKU           []string           `bson:"sku"`
	Category      string             `bson:"category"`
	CategoryAr    string             `bson:"category_ar"`
	Code          string             `bson:"code"`
	Description   string             `bson:"description"`
	DescriptionAr string             `bson:"description_ar"`
	Tags          []string           `bson:"tags"`
	TagsAr        []string           `bson:"tags_ar"`
	Image         *fileDocument      `bson:"image,omitempty"`
	BlogItems     []blogItemDocument `bson:"blogItems,omitempty"`
	VideoURL      string             `bson:"videoUrl,omitempty"`
	LikeCount     int64              `bson:"likeCount"`
	LikedBy       []string           `bson:"likedBy"`
	Comments      []commentDocument  `bson:"comments"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func newFileDocument(f *domain.FileData) *fileDocument {
	if f == nil {
		return nil
	}
	return &fileDocument{FileName: f.FileName, FilePath: f.FilePath, FileType: f.FileType, FileSize: f.FileSize}
}

func (d *fileDocument) toDomain() *domain.FileData {
	if d == nil {
		return nil
	}
	return &domain.FileData{FileName: d.FileName, FilePath: d.FilePath, FileType: d.FileType, FileSize: d.FileSize}
}

func newReplyDocument(r *domain.Reply) replyDocument {
	return replyDocument{
		ID:        r.ID,
		CommentID: r.CommentID,
		Author:    r.Author,
		Photo:     r.AuthorPhoto,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (d *replyDocument) toDomain() domain.Reply {
	return domain.Reply{
		ID:          d.ID,
		CommentID:   d.CommentID,
		Author:      d.Author,
		AuthorPhoto: d.Photo,
		Text:        d.Text,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newCommentDocument(c *domain.Comment) commentDocument {
	replies := make([]replyDocument, len(c.Replies))
	for i := range c.Replies {
		replies[i] = newReplyDocument(&c.Replies[i])
	}
	return commentDocument{
		ID:        c.ID,
		Author:    c.Author,
		Photo:     c.AuthorPhoto,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Replies:   replies,
	}
}

func (d *commentDocument) toDomain() domain.Comment {
	replies := make([]domain.Reply, len(d.Replies))
	for i := range d.Replies {
		replies[i] = d.Replies[i].toDomain()
	}
	return domain.Comment{
		ID:          d.ID,
		Author:      d.Author,
		AuthorPhoto: d.Photo,
		Text:        d.Text,
		CreatedAt:   d.CreatedAt,
		Replies:     replies,
	}
}

func (d *itemDocument) aggregate(kind domain.Kind) domain.Aggregate {
	likedBy := append([]string{}, d.LikedBy...)
	comments := make([]domain.Comment, len(d.Comments))
	for i := range d.Comments {
		comments[i] = d.Comments[i].toDomain()
	}
	return domain.Aggregate{
		ID:        d.ID,
		Kind:      kind,
		OwnerID:   d.OwnerID,
		LikeCount: d.LikeCount,
		LikedBy:   likedBy,
		Comments:  comments,
	}
}

func (d *itemDocument) toDomain(kind domain.Kind) domain.ContentItem {
	var blogItems []domain.BlogItem
	if len(d.BlogItems) > 0 {
		blogItems = make([]domain.BlogItem, len(d.BlogItems))
		for i, b := range d.BlogItems {
			blogItems[i] = domain.BlogItem{
				Name:          b.Name,
				NameAr:        b.NameAr,
				Description:   b.Description,
				DescriptionAr: b.DescriptionAr,
				Code:          b.Code,
				Image:         b.Image.toDomain(),
				ImagePreview:  b.ImagePreview,
			}
		}
	}
	return domain.ContentItem{
		Aggregate:     d.aggregate(kind),
		Photo:         d.Photo,
		Name:          d.Name,
		NameAr:        d.NameAr,
		SKU:           d.SKU,
		Category:      d.Category,
		CategoryAr:    d.CategoryAr,
		Code:          d.Code,
		Description:   d.Description,
		DescriptionAr: d.DescriptionAr,
		Tags:          d.Tags,
		TagsAr:        d.TagsAr,
		Image:         d.Image.toDomain(),
		BlogItems:     blogItems,
		VideoURL:      d.VideoURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// newItemDocument builds a fresh document. The engagement state of a new
// item is always empty whatever the caller passes.
func newItemDocument(c *domain.ContentItem) *itemDocument {
	d := &itemDocument{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		LikedBy:   []string{},
		Comments:  []commentDocument{},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	d.setDescriptive(c)
	return d
}

func (d *itemDocument) setDescriptive(c *domain.ContentItem) {
	d.Photo = c.Photo
	d.Name = c.Name
	d.NameAr = c.NameAr
	d.SKU = nonNil(c.SKU)
	d.Category = c.Category
	d.CategoryAr = c.CategoryAr
	d.Code = c.Code
	d.Description = c.Description
	d.DescriptionAr = c.DescriptionAr
	d.Tags = nonNil(c.Tags)
	d.TagsAr = nonNil(c.TagsAr)
	d.Image = newFileDocument(c.Image)
	d.VideoURL = c.VideoURL
	d.BlogItems = nil
	for _, b := range c.BlogItems {
		d.BlogItems = append(d.BlogItems, blogItemDocument{
			Name:          b.Name,
			NameAr:        b.NameAr,
			Description:   b.Description,
			DescriptionAr: b.DescriptionAr,
			Code:          b.Code,
			Image:         newFileDocument(b.Image),
			ImagePreview:  b.ImagePreview,
		})
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
