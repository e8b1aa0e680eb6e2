package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
)

// CategoryModule wires the category routes. All require auth.
type CategoryModule struct {
	handler *handlers.CategoryHandler
	auth    gin.HandlerFunc
}

func NewCategoryModule(h *handlers.CategoryHandler, auth gin.HandlerFunc) *CategoryModule {
	return &CategoryModule{handler: h, auth: auth}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.Use(m.auth)
	{
		categories.POST("", m.handler.Create)
		categories.GET("", m.handler.List)
		categories.GET("/:id", m.handler.Get)
		categories.PUT("/:id", m.handler.Update)
		categories.DELETE("/:id", m.handler.Delete)
	}
}
