package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/container"
	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/interface/middleware"
)

// PostModule wires the trip post routes. Everything requires auth; reads are
// cheap but writes share the per-user limiter.
type PostModule struct {
	handler *handlers.PostHandler
	auth    gin.HandlerFunc
}

func NewPostModule(h *handlers.PostHandler, auth gin.HandlerFunc) *PostModule {
	return &PostModule{handler: h, auth: auth}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.Use(m.auth)
	posts.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		posts.POST("", m.handler.Create)
		posts.GET("", m.handler.List)
		posts.GET("/search", m.handler.Search)
		posts.GET("/:id", m.handler.Get)
		posts.PUT("/:id", m.handler.Update)
		posts.DELETE("/:id", m.handler.Delete)
		posts.PUT("/likes/:id", m.handler.Like)
		posts.PUT("/dislikes/:id", m.handler.Dislike)
		posts.POST("/image", m.handler.UploadImage)
	}
}
