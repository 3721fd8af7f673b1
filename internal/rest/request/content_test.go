package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/portfolio-cms/domain"
)

func TestParseBlogItems(t *testing.T) {
	r := Content{BlogItems: `[{"name":"intro","code":"fmt.Println()"}]`}
	items, err := r.ParseBlogItems(true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "intro", items[0].Name)

	r.BlogItems = "null"
	items, err = r.ParseBlogItems(true)
	require.NoError(t, err)
	assert.Empty(t, items)

	r.BlogItems = ""
	_, err = r.ParseBlogItems(true)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	items, err = r.ParseBlogItems(false)
	require.NoError(t, err)
	assert.Nil(t, items)

	r.BlogItems = `{"name":"not an array"}`
	_, err = r.ParseBlogItems(false)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestToDomain_Lists(t *testing.T) {
	r := Content{Name: "n", Tags: []string{`["go","grpc"]`}, TagsAr: []string{" a ", "", "b"}}
	item := r.ToDomain(domain.KindVideo)
	assert.Equal(t, domain.KindVideo, item.Kind)
	assert.Equal(t, []string{"go", "grpc"}, item.Tags)
	assert.Equal(t, []string{"a", "b"}, item.TagsAr)
	assert.Empty(t, item.SKU)
}
