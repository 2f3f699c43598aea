package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
)

type ApplicationHandler struct {
	svc *service.ApplicationService
	log *zap.Logger
}

func NewApplicationHandler(svc *service.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: log}
}

type submitApplicationReq struct {
	ChildID string `json:"child_id" binding:"required"`
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	var in submitApplicationReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	id, err := h.svc.Submit(c.Request.Context(), u.ID, in.ChildID)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.Created(c, "application submitted successfully", gin.H{"applicationId": id})
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	items, err := h.svc.MyApplications(c.Request.Context(), u.ID)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, items)
}
