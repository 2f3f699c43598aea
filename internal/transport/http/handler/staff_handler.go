package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
)

type StaffHandler struct {
	svc *service.StaffService
	log *zap.Logger
}

func NewStaffHandler(svc *service.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: log}
}

func (h *StaffHandler) Tasks(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	tasks, err := h.svc.Tasks(c.Request.Context(), u.ID)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, tasks)
}

type updateTaskReq struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed on_hold"`
	Notes  string `json:"notes" binding:"omitempty,max=1000"`
}

func (h *StaffHandler) UpdateTask(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	var in updateTaskReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	if err := h.svc.UpdateTask(c.Request.Context(), u.ID, c.Param("id"), in.Status, in.Notes); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OKMsg(c, "task updated successfully", nil)
}

func (h *StaffHandler) PendingDocuments(c *gin.Context) {
	docs, err := h.svc.PendingDocuments(c.Request.Context())
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, docs)
}

type reviewDocumentReq struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
	Notes  string `json:"notes" binding:"omitempty,max=1000"`
}

func (h *StaffHandler) ReviewDocument(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	var in reviewDocumentReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	if err := h.svc.ReviewDocument(c.Request.Context(), u.ID, c.Param("id"), in.Status, in.Notes); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OKMsg(c, "document reviewed", nil)
}
