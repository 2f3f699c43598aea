package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
)

type VisitHandler struct {
	svc *service.VisitService
	log *zap.Logger
}

func NewVisitHandler(svc *service.VisitService, log *zap.Logger) *VisitHandler {
	return &VisitHandler{svc: svc, log: log}
}

func (h *VisitHandler) MyVisits(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	items, err := h.svc.MyVisits(c.Request.Context(), u)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, items)
}
