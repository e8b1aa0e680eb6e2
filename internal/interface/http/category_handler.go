package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

type CategoryHandler struct {
	service *application.CategoryService
	logger  *logrus.Logger
}

func NewCategoryHandler(service *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, logger: logger}
}

// Create POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req application.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.service.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toCategoryView(category), "Category created", nil)
}

// List GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCategoryViews(categories), "", nil)
}

// Get GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCategoryView(category), "", nil)
}

// Update PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req application.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.service.Update(c.Request.Context(), c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCategoryView(category), "Category updated", nil)
}

// Delete DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Category deleted", nil)
}
