package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
)

type ChildHandler struct {
	svc *service.ChildService
	log *zap.Logger
}

func NewChildHandler(svc *service.ChildService, log *zap.Logger) *ChildHandler {
	return &ChildHandler{svc: svc, log: log}
}

func (h *ChildHandler) List(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	items, err := h.svc.List(c.Request.Context(), u.ID)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, items)
}

func (h *ChildHandler) Get(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	child, err := h.svc.Get(c.Request.Context(), c.Param("id"), u.ID)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, child)
}
