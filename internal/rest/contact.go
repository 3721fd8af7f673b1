package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/rest/request"
)

type ContactHandler struct {
	Service domain.ContactUsecase
}

func NewContactHandler(svc domain.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		Service: svc,
	}
}

// ContactUs relays the contact form to the site owner
func (h *ContactHandler) ContactUs(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	var req request.Contact
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Please add service and message"})
		return
	}

	if err := h.Service.Send(c.Request.Context(), user, req.ToDomain()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email Sent"})
}
