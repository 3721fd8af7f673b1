package rest

import "github.com/gin-gonic/gin"

// RegisterContentRoutes mounts the content and engagement endpoints of one kind on g
func RegisterContentRoutes(g *gin.RouterGroup, content *ContentHandler, engagement *EngagementHandler, auth gin.HandlerFunc) {
	g.GET("/", content.FetchContent)
	g.GET("/related/:category/:id", content.Related)
	g.GET("/:id", content.GetByID)
	g.GET("/:id/engagement", engagement.GetEngagement)
	g.GET("/comments/:commentId", engagement.GetComment)

	authorized := g.Group("")
	authorized.Use(auth)
	{
		authorized.POST("/", content.Store)
		authorized.PATCH("/:id", content.Update)
		authorized.DELETE("/:id", content.Delete)

		authorized.POST("/:id/like", engagement.Like)
		authorized.POST("/:id/unlike", engagement.Unlike)
		authorized.POST("/:id", engagement.Comment)
		authorized.POST("/:id/comments/:commentId", engagement.Reply)
		authorized.PUT("/comments/:commentId", engagement.EditComment)
		authorized.DELETE("/comments/:commentId", engagement.DeleteComment)
	}
}

func RegisterContactRoutes(g *gin.RouterGroup, contact *ContactHandler, auth gin.HandlerFunc) {
	g.POST("", auth, contact.ContactUs)
}
