package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

type ChargerHandler struct {
	service *application.ChargerService
	logger  *logrus.Logger
}

func NewChargerHandler(service *application.ChargerService, logger *logrus.Logger) *ChargerHandler {
	return &ChargerHandler{service: service, logger: logger}
}

// Create POST /api/chargers
func (h *ChargerHandler) Create(c *gin.Context) {
	var req application.ChargerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	charger, err := h.service.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toChargerView(charger), "Charger added", nil)
}

// Get GET /api/chargers/:id
func (h *ChargerHandler) Get(c *gin.Context) {
	charger, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toChargerView(charger), "", nil)
}

// ListByPost GET /api/chargers/post/:id
func (h *ChargerHandler) ListByPost(c *gin.Context) {
	chargers, err := h.service.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toChargerViews(chargers), "", nil)
}

// Update PUT /api/chargers/:id
func (h *ChargerHandler) Update(c *gin.Context) {
	var req application.ChargerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	charger, err := h.service.Update(c.Request.Context(), c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toChargerView(charger), "Charger updated", nil)
}

// Delete DELETE /api/chargers/:id
func (h *ChargerHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Charger deleted", nil)
}

// PurgeUnassigned DELETE /api/chargers/unassigned — admin only.
func (h *ChargerHandler) PurgeUnassigned(c *gin.Context) {
	n, err := h.service.PurgeUnassigned(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": n}, "Unassigned chargers deleted", nil)
}
