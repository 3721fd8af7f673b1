package rest

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/rest/request"
	"github.com/Guyuepp/portfolio-cms/internal/rest/response"
)

const (
	DefaultPageNum = 10
	PageMinNum     = 1
	PageMaxNum     = 100
)

// ContentHandler represent the httphandler for one kind of content
type ContentHandler struct {
	Service domain.ContentUsecase
	Kind    domain.Kind
}

func NewContentHandler(svc domain.ContentUsecase, kind domain.Kind) *ContentHandler {
	return &ContentHandler{
		Service: svc,
		Kind:    kind,
	}
}

// FetchContent will fetch the items based on given params
func (h *ContentHandler) FetchContent(c *gin.Context) {
	num, err := strconv.Atoi(c.Query("num"))
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	cursor := c.Query("cursor")

	items, nextCursor, err := h.Service.Fetch(c.Request.Context(), h.Kind, cursor, int64(num))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, response.NewContentListFromDomain(items))
}

// GetByID will get item by given id
func (h *ContentHandler) GetByID(c *gin.Context) {
	item, err := h.Service.GetByID(c.Request.Context(), h.Kind, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewContentFromDomain(&item))
}

func (h *ContentHandler) Related(c *gin.Context) {
	items, err := h.Service.Related(c.Request.Context(), h.Kind, c.Param("category"), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewContentListFromDomain(items))
}

// readMedia opens the uploaded files of a multipart request.
// The returned func closes them and must always be called.
func readMedia(c *gin.Context) (domain.ContentMedia, func(), error) {
	var (
		media   domain.ContentMedia
		closers []io.Closer
	)
	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}

	form, err := c.MultipartForm()
	if errors.Is(err, http.ErrNotMultipart) {
		return media, closeAll, nil
	}
	if err != nil {
		return media, closeAll, domain.InvalidField("form")
	}

	open := func(fh *multipart.FileHeader) (domain.Upload, error) {
		f, err := fh.Open()
		if err != nil {
			return domain.Upload{}, err
		}
		closers = append(closers, f)
		return domain.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		}, nil
	}

	if files := form.File["image"]; len(files) > 0 {
		u, err := open(files[0])
		if err != nil {
			return media, closeAll, err
		}
		media.Image = &u
	}
	for _, fh := range form.File["blogItemImages"] {
		u, err := open(fh)
		if err != nil {
			return media, closeAll, err
		}
		media.BlogItemImages = append(media.BlogItemImages, u)
	}
	return media, closeAll, nil
}

// bindContent decodes the form fields and files of a create or update request
func (h *ContentHandler) bindContent(c *gin.Context, create bool) (domain.ContentItem, domain.ContentMedia, func(), error) {
	var req request.Content
	if err := c.ShouldBind(&req); err != nil {
		return domain.ContentItem{}, domain.ContentMedia{}, func() {}, domain.InvalidField(err.Error())
	}
	item := req.ToDomain(h.Kind)
	if h.Kind == domain.KindBlog {
		items, err := req.ParseBlogItems(create)
		if err != nil {
			return domain.ContentItem{}, domain.ContentMedia{}, func() {}, err
		}
		item.BlogItems = items
	}

	media, closeAll, err := readMedia(c)
	if err != nil {
		closeAll()
		return domain.ContentItem{}, domain.ContentMedia{}, func() {}, err
	}
	return item, media, closeAll, nil
}

// Store will store the item by given multipart form
func (h *ContentHandler) Store(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	item, media, closeAll, err := h.bindContent(c, true)
	defer closeAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	item.OwnerID = user.ID

	if err := h.Service.Store(c.Request.Context(), &item, media); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewContentFromDomain(&item))
}

func (h *ContentHandler) Update(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	item, media, closeAll, err := h.bindContent(c, false)
	defer closeAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	item.ID = c.Param("id")

	if err := h.Service.Update(c.Request.Context(), &item, media, user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewContentFromDomain(&item))
}

// Delete will delete the item by given param
func (h *ContentHandler) Delete(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), h.Kind, c.Param("id"), user.ID); err != nil {
		abortWithError(c, err)
		return
	}

	label := string(h.Kind)
	logrus.Infof("%s %s deleted by %s", label, c.Param("id"), user.ID)
	c.JSON(http.StatusOK, gin.H{"message": strings.ToUpper(label[:1]) + label[1:] + " deleted."})
}
