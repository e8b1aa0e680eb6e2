package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

type PostHandler struct {
	service *application.PostService
	logger  *logrus.Logger
}

func NewPostHandler(service *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{service: service, logger: logger}
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req application.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	post, err := h.service.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toPostView(post, currentUserID(c)), "Post created", nil)
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPostViews(posts, currentUserID(c)), "", nil)
}

// Get GET /api/posts/:id — counts a view.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPostView(post, currentUserID(c)), "", nil)
}

// Update PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req application.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	post, err := h.service.Update(c.Request.Context(), c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPostView(post, currentUserID(c)), "Post updated", nil)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Post deleted", nil)
}

// Like PUT /api/posts/likes/:id
func (h *PostHandler) Like(c *gin.Context) {
	post, err := h.service.Like(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPostView(post, currentUserID(c)), "", nil)
}

// Dislike PUT /api/posts/dislikes/:id
func (h *PostHandler) Dislike(c *gin.Context) {
	post, err := h.service.Dislike(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPostView(post, currentUserID(c)), "", nil)
}

// Search GET /api/posts/search?q=
func (h *PostHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Error[any](c, http.StatusBadRequest, "Search query is required", nil)
		return
	}
	posts, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toPostViews(posts, currentUserID(c)), "", nil)
}

// UploadImage POST /api/posts/image
func (h *PostHandler) UploadImage(c *gin.Context) {
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

	url, err := h.service.UploadImage(c.Request.Context(), currentUserID(c), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": url}, "Image uploaded", nil)
}
