package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/rest/request"
	"github.com/Guyuepp/portfolio-cms/internal/rest/response"
)

// EngagementHandler serves likes and comments of one content kind
type EngagementHandler struct {
	Service domain.EngagementUsecase
}

func NewEngagementHandler(svc domain.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{
		Service: svc,
	}
}

func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	agg, err := h.Service.GetAggregate(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewEngagementFromDomain(&agg))
}

func (h *EngagementHandler) GetComment(c *gin.Context) {
	comment, err := h.Service.GetComment(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// Like adds the acting user to the like set
func (h *EngagementHandler) Like(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	count, err := h.Service.LikeItem(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item liked successfully", "likeCount": count})
}

// Unlike removes the acting user from the like set
func (h *EngagementHandler) Unlike(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	count, err := h.Service.UnlikeItem(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item unliked successfully", "likeCount": count})
}

func (h *EngagementHandler) Comment(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Comment and user name are required."})
		return
	}

	comment, err := h.Service.CommentItem(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully.", "comment": response.NewCommentFromDomain(&comment)})
}

// Reply responds with the parent comment including the new reply
func (h *EngagementHandler) Reply(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}
	var req request.Reply
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Reply and user name are required."})
		return
	}

	comment, err := h.Service.ReplyItem(c.Request.Context(), c.Param("id"), c.Param("commentId"), req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *EngagementHandler) EditComment(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}
	var req request.EditComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Comment text is required."})
		return
	}

	comment, err := h.Service.EditComment(c.Request.Context(), c.Param("commentId"), req.Comment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully.", "comment": response.NewCommentFromDomain(&comment)})
}

func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}
	if err := h.Service.DeleteComment(c.Request.Context(), c.Param("commentId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully."})
}
