package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/container"
	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/interface/middleware"
)

// EmailModule wires the user-to-user message routes. Sending is tightly rate
// limited; listing and flagging are admin only.
type EmailModule struct {
	handler *handlers.EmailHandler
	auth    gin.HandlerFunc
}

func NewEmailModule(h *handlers.EmailHandler, auth gin.HandlerFunc) *EmailModule {
	return &EmailModule{handler: h, auth: auth}
}

func (m *EmailModule) Register(rg *gin.RouterGroup) {
	emails := rg.Group("/emails")
	emails.Use(m.auth)
	{
		sendLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Hour, middleware.KeyByUserID(), nil)
		emails.POST("", sendLimiter, m.handler.Send)

		admin := emails.Group("/")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", m.handler.List)
		admin.PUT("/flag/:id", m.handler.Flag)
	}
}
