package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/domain"
	"adoptlink/internal/service"
	resp "adoptlink/internal/transport/http/response"
)

type AdminHandler struct {
	svc *service.AdminService
	log *zap.Logger
}

func NewAdminHandler(svc *service.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: log}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, stats)
}

type listUsersReq struct {
	Offset      int    `form:"offset,default=0"`
	Limit       int    `form:"limit,default=20"`
	Q           string `form:"q"`            // email / name 模糊搜
	WithDeleted bool   `form:"with_deleted"` // 是否包含软删
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var in listUsersReq
	if err := c.ShouldBindQuery(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	users, total, err := h.svc.ListUsers(c.Request.Context(), domain.ListUsersQuery{
		Offset: in.Offset, Limit: in.Limit,
		Search: in.Q, WithDeleted: in.WithDeleted,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, gin.H{"total": total, "items": users})
}

type setUserStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending verified approved rejected"`
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var in setUserStatusReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	id := c.Param("id")
	if err := h.svc.SetUserStatus(c.Request.Context(), id, in.Status); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	h.log.Info("user status updated", zap.String("userId", id), zap.String("status", in.Status))
	resp.OKMsg(c, "status updated", gin.H{"id": id})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.BanUser(c.Request.Context(), id); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	h.log.Info("user banned", zap.String("userId", id))
	resp.OKMsg(c, "user banned", gin.H{"id": id})
}
