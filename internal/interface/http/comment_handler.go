package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

type CommentHandler struct {
	service *application.CommentService
	logger  *logrus.Logger
}

func NewCommentHandler(service *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{service: service, logger: logger}
}

// Create POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req application.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	comment, err := h.service.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toCommentView(comment, currentUserID(c)), "Comment added", nil)
}

// List GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCommentViews(comments, currentUserID(c)), "", nil)
}

// ListByPost GET /api/comments/post/:id
func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, err := h.service.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCommentViews(comments, currentUserID(c)), "", nil)
}

// Get GET /api/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCommentView(comment, currentUserID(c)), "", nil)
}

// Update PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	comment, err := h.service.Update(c.Request.Context(), c.Param("id"), currentUserID(c), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCommentView(comment, currentUserID(c)), "Comment updated", nil)
}

// Delete DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Comment deleted", nil)
}

// Like PUT /api/comments/likes/:id
func (h *CommentHandler) Like(c *gin.Context) {
	comment, err := h.service.Like(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCommentView(comment, currentUserID(c)), "", nil)
}

// Dislike PUT /api/comments/dislikes/:id
func (h *CommentHandler) Dislike(c *gin.Context) {
	comment, err := h.service.Dislike(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCommentView(comment, currentUserID(c)), "", nil)
}
