package domain

import (
	"context"
	"io"
	"time"
)

// FileData describes a file that was uploaded to media storage
type FileData struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"` // public URL
	FileType string `json:"fileType"`
	FileSize string `json:"fileSize"` // human readable, e.g. "12.5 KB"
}

// BlogItem is a section of a blog post
type BlogItem struct {
	Name          string    `json:"name"`
	NameAr        string    `json:"name_ar"`
	Description   string    `json:"description"`
	DescriptionAr string    `json:"description_ar"`
	Code          string    `json:"code"`
	Image         *FileData `json:"image"`
	ImagePreview  string    `json:"imagePreview"`
}

// ContentItem is a blog post or a video. The engagement state lives in the
// embedded Aggregate and is only ever changed through EngagementRepository.
type ContentItem struct {
	Aggregate

	Photo         string     `json:"photo"`
	Name          string     `json:"name"`
	NameAr        string     `json:"name_ar"`
	SKU           []string   `json:"sku"`
	Category      string     `json:"category"`
	CategoryAr    string     `json:"category_ar"`
	Code          string     `json:"code"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"description_ar"`
	Tags          []string   `json:"tags"`
	TagsAr        []string   `json:"tags_ar"`
	Image         *FileData  `json:"image,omitempty"`
	BlogItems     []BlogItem `json:"blogItems,omitempty"`
	VideoURL      string     `json:"videoUrl,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Upload is a file received from a client, not yet stored
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ContentMedia groups the files sent along with a create or update request.
// BlogItemImages[i] belongs to BlogItems[i].
type ContentMedia struct {
	Image          *Upload
	BlogItemImages []Upload
}

// ContentRepository defines the contract for content persistence.
// It never touches like or comment state.
type ContentRepository interface {
	// Fetch retrieves items created after the cursor, oldest first.
	Fetch(ctx context.Context, kind Kind, cursor string, num int64) ([]ContentItem, error)

	// GetByID returns ErrNotFound if the item doesn't exist.
	GetByID(ctx context.Context, kind Kind, id string) (ContentItem, error)

	// FetchByCategory retrieves up to limit items in the given category.
	FetchByCategory(ctx context.Context, kind Kind, category string, limit int64) ([]ContentItem, error)

	// Store creates a new item. The ID must already be set.
	Store(ctx context.Context, item *ContentItem) error

	// Update modifies the descriptive fields of an existing item.
	// Returns ErrNotFound if the item doesn't exist.
	Update(ctx context.Context, item *ContentItem) error

	// Delete removes the item with all its likes, comments and replies.
	Delete(ctx context.Context, kind Kind, id string) error

	// FetchIDs pages through item ids in ascending order, starting after cursor.
	FetchIDs(ctx context.Context, kind Kind, cursor string, limit int64) ([]string, error)
}

// ContentCache stores item snapshots with a logical expiry
type ContentCache interface {
	// GetItem returns ErrCacheMiss if nothing is cached for the item.
	GetItem(ctx context.Context, kind Kind, id string) (item ContentItem, expired bool, err error)
	SetItem(ctx context.Context, item *ContentItem, ttl time.Duration) error
	DeleteItem(ctx context.Context, kind Kind, id string) error
}

// MediaStorage uploads files to the external media host
type MediaStorage interface {
	Upload(ctx context.Context, u Upload) (FileData, error)
}

// ContentUsecase defines the business logic of content items
type ContentUsecase interface {
	Fetch(ctx context.Context, kind Kind, cursor string, num int64) ([]ContentItem, string, error)
	GetByID(ctx context.Context, kind Kind, id string) (ContentItem, error)
	// Related returns items sharing the category of item id, excluding items with its name.
	Related(ctx context.Context, kind Kind, category, id string) ([]ContentItem, error)
	Store(ctx context.Context, item *ContentItem, media ContentMedia) error
	Update(ctx context.Context, item *ContentItem, media ContentMedia, actingUserID string) error
	Delete(ctx context.Context, kind Kind, id, actingUserID string) error
	InitBloomFilter(ctx context.Context) error
}
