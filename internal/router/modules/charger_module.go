package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/interface/middleware"
)

// ChargerModule wires the EV charger routes. All require auth; the purge of
// unassigned chargers is admin only.
type ChargerModule struct {
	handler *handlers.ChargerHandler
	auth    gin.HandlerFunc
}

func NewChargerModule(h *handlers.ChargerHandler, auth gin.HandlerFunc) *ChargerModule {
	return &ChargerModule{handler: h, auth: auth}
}

func (m *ChargerModule) Register(rg *gin.RouterGroup) {
	chargers := rg.Group("/chargers")
	chargers.Use(m.auth)
	{
		chargers.POST("", m.handler.Create)
		chargers.GET("/post/:id", m.handler.ListByPost)
		chargers.GET("/:id", m.handler.Get)
		chargers.PUT("/:id", m.handler.Update)
		chargers.DELETE("/unassigned", middleware.RequireAdmin(), m.handler.PurgeUnassigned)
		chargers.DELETE("/:id", m.handler.Delete)
	}
}
