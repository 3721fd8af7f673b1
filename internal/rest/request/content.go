package request

import (
	"encoding/json"
	"strings"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// Content is the multipart form of a create or update request.
// List fields accept repeated values or a single JSON array.
type Content struct {
	Name          string   `form:"name"`
	NameAr        string   `form:"name_ar"`
	SKU           []string `form:"sku"`
	Category      string   `form:"category"`
	CategoryAr    string   `form:"category_ar"`
	Code          string   `form:"code"`
	Description   string   `form:"description"`
	DescriptionAr string   `form:"description_ar"`
	Tags          []string `form:"tags"`
	TagsAr        []string `form:"tags_ar"`
	Photo         string   `form:"photo"`
	VideoURL      string   `form:"videoUrl"`
	// BlogItems is a JSON encoded array, or the literal null
	BlogItems string `form:"blogItems"`
}

func splitList(values []string) []string {
	if len(values) == 1 {
		v := strings.TrimSpace(values[0])
		var arr []string
		if strings.HasPrefix(v, "[") && json.Unmarshal([]byte(v), &arr) == nil {
			return arr
		}
	}
	res := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

// ParseBlogItems decodes the blogItems field. An absent field is only an
// error when required is set.
func (r *Content) ParseBlogItems(required bool) ([]domain.BlogItem, error) {
	raw := strings.TrimSpace(r.BlogItems)
	switch raw {
	case "":
		if required {
			return nil, domain.InvalidField("blogItems")
		}
		return nil, nil
	case "null":
		return []domain.BlogItem{}, nil
	}

	var items []domain.BlogItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, domain.InvalidField("blogItems")
	}
	return items, nil
}

// ToDomain: Request -> Domain
func (r *Content) ToDomain(kind domain.Kind) domain.ContentItem {
	return domain.ContentItem{
		Aggregate:     domain.Aggregate{Kind: kind},
		Photo:         r.Photo,
		Name:          r.Name,
		NameAr:        r.NameAr,
		SKU:           splitList(r.SKU),
		Category:      r.Category,
		CategoryAr:    r.CategoryAr,
		Code:          r.Code,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		Tags:          splitList(r.Tags),
		TagsAr:        splitList(r.TagsAr),
		VideoURL:      r.VideoURL,
	}
}
