package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/application"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

type EmailHandler struct {
	service *application.EmailService
	logger  *logrus.Logger
}

func NewEmailHandler(service *application.EmailService, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{service: service, logger: logger}
}

// Send POST /api/emails
func (h *EmailHandler) Send(c *gin.Context) {
	var req application.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	msg, err := h.service.Send(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toEmailMessageView(msg), "Message sent", nil)
}

// List GET /api/emails — admin only.
func (h *EmailHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEmailMessageViews(messages), "", nil)
}

// Flag PUT /api/emails/flag/:id — admin only.
func (h *EmailHandler) Flag(c *gin.Context) {
	var req struct {
		Flagged *bool `json:"flagged" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.service.Flag(c.Request.Context(), c.Param("id"), *req.Flagged); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Message updated", nil)
}
