package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

type UserHandler struct {
	service *application.UserService
	cookies *helpers.Manager
	logger  *logrus.Logger
}

func NewUserHandler(service *application.UserService, cookies *helpers.Manager, logger *logrus.Logger) *UserHandler {
	return &UserHandler{service: service, cookies: cookies, logger: logger}
}

// Register POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req application.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserView(user), "Account created. Check your email to verify it.", nil)
}

// Login POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req application.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cookies.SetPair(c,
		result.Tokens.AccessToken, result.Tokens.AccessExpiresAt,
		result.Tokens.RefreshToken, result.Tokens.RefreshExpiresAt,
	)
	response.Success(c, http.StatusOK, toUserView(result.User), "Login successful", nil)
}

// Refresh POST /api/users/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	result, err := h.service.Refresh(c.Request.Context(), refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cookies.SetPair(c,
		result.Tokens.AccessToken, result.Tokens.AccessExpiresAt,
		result.Tokens.RefreshToken, result.Tokens.RefreshExpiresAt,
	)
	response.Success(c, http.StatusOK, toUserView(result.User), "Token refreshed", nil)
}

// Logout POST /api/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if sid := c.GetString("sessionID"); sid != "" {
		if err := h.service.Logout(c.Request.Context(), sid); err != nil {
			h.logger.WithError(err).Warn("drop session")
		}
	}
	h.cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "Logged out", nil)
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserViews(users), "", nil)
}

// Get GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(user), "", nil)
}

// Profile GET /api/users/profile/:id — records the viewer.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(user), "", nil)
}

// Update PUT /api/users
func (h *UserHandler) Update(c *gin.Context) {
	var req application.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.service.UpdateProfile(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(user), "Profile updated", nil)
}

// UpdatePassword PUT /api/users/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req application.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.service.UpdatePassword(c.Request.Context(), currentUserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password updated", nil)
}

// UploadProfilePhoto PUT /api/users/profile-photo
func (h *UserHandler) UploadProfilePhoto(c *gin.Context) {
	h.uploadPhoto(c, h.service.UploadProfilePhoto, "Profile photo updated")
}

// UploadCoverPhoto PUT /api/users/cover-photo
func (h *UserHandler) UploadCoverPhoto(c *gin.Context) {
	h.uploadPhoto(c, h.service.UploadCoverPhoto, "Cover photo updated")
}

func (h *UserHandler) uploadPhoto(c *gin.Context, upload func(ctx context.Context, id, filename, contentType string, r io.Reader) (string, error), message string) {
	header, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Image is required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	url, err := upload(c.Request.Context(), currentUserID(c), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": url}, message, nil)
}

// SendVerification POST /api/users/verify
func (h *UserHandler) SendVerification(c *gin.Context) {
	if err := h.service.SendVerificationEmail(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Verification email sent", nil)
}

// Verify PUT /api/users/verify/:token
func (h *UserHandler) Verify(c *gin.Context) {
	user, err := h.service.VerifyAccount(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(user), "Account verified", nil)
}

// ForgotPassword POST /api/users/forgot-password
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Reset email sent", nil)
}

// ResetPassword PUT /api/users/reset-password/:token
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required,pwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password reset", nil)
}

// Follow PUT /api/users/follow/:id
func (h *UserHandler) Follow(c *gin.Context) {
	if err := h.service.Follow(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "You are now following this user", nil)
}

// Unfollow PUT /api/users/unfollow/:id
func (h *UserHandler) Unfollow(c *gin.Context) {
	if err := h.service.Unfollow(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "You unfollowed this user", nil)
}

// Block PUT /api/users/block/:id — admin only.
func (h *UserHandler) Block(c *gin.Context) {
	if err := h.service.Block(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "User blocked", nil)
}

// Unblock PUT /api/users/unblock/:id — admin only.
func (h *UserHandler) Unblock(c *gin.Context) {
	if err := h.service.Unblock(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "User unblocked", nil)
}

// Delete DELETE /api/users/:id — self or admin.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id != currentUserID(c) && !c.GetBool("isAdmin") {
		response.Error[any](c, http.StatusForbidden, "You are not allowed to delete this user", nil)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "User deleted", nil)
}
