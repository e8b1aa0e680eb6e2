package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/container"
	handlers "github.com/zigac9/ElectricalCarBlog-backend/internal/interface/http"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/interface/middleware"
)

// UserModule wires the account routes.
// Public: register, login, refresh, verify, forgot/reset password.
// Protected: profile, follow, photos, password; block/unblock are admin only.
type UserModule struct {
	handler *handlers.UserHandler
	auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{handler: h, auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	registerLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP(), nil)

	users := rg.Group("/users")
	users.POST("/register", registerLimiter, m.handler.Register)
	users.POST("/login", loginLimiter, m.handler.Login)
	users.POST("/refresh", refreshLimiter, m.handler.Refresh)
	users.PUT("/verify/:token", m.handler.Verify)
	users.POST("/forgot-password", loginLimiter, m.handler.ForgotPassword)
	users.PUT("/reset-password/:token", m.handler.ResetPassword)

	auth := users.Group("/")
	auth.Use(m.auth)
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.handler.Logout)
		auth.GET("", m.handler.List)
		auth.GET("/:id", m.handler.Get)
		auth.GET("/profile/:id", m.handler.Profile)
		auth.PUT("", m.handler.Update)
		auth.PUT("/password", m.handler.UpdatePassword)
		auth.PUT("/profile-photo", m.handler.UploadProfilePhoto)
		auth.PUT("/cover-photo", m.handler.UploadCoverPhoto)
		auth.POST("/verify", m.handler.SendVerification)
		auth.PUT("/follow/:id", m.handler.Follow)
		auth.PUT("/unfollow/:id", m.handler.Unfollow)
		auth.DELETE("/:id", m.handler.Delete)

		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		admin.PUT("/block/:id", m.handler.Block)
		admin.PUT("/unblock/:id", m.handler.Unblock)
	}
}
