package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
)

// CommentModule wires the comment routes. All require auth.
type CommentModule struct {
	handler *handlers.CommentHandler
	auth    gin.HandlerFunc
}

func NewCommentModule(h *handlers.CommentHandler, auth gin.HandlerFunc) *CommentModule {
	return &CommentModule{handler: h, auth: auth}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	comments.Use(m.auth)
	{
		comments.POST("", m.handler.Create)
		comments.GET("", m.handler.List)
		comments.GET("/post/:id", m.handler.ListByPost)
		comments.GET("/:id", m.handler.Get)
		comments.PUT("/:id", m.handler.Update)
		comments.DELETE("/:id", m.handler.Delete)
		comments.PUT("/likes/:id", m.handler.Like)
		comments.PUT("/dislikes/:id", m.handler.Dislike)
	}
}
