package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
	"adoptlink/pkg/utils"
)

type DocumentHandler struct {
	svc       *service.DocumentService
	uploadDir string
	log       *zap.Logger
}

func NewDocumentHandler(svc *service.DocumentService, uploadDir string, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, uploadDir: uploadDir, log: log}
}

func (h *DocumentHandler) MyDocuments(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	docs, err := h.svc.MyDocuments(c.Request.Context(), u.ID)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, docs)
}

// Upload multipart：file + type；落盘名用随机 ID，避免用户可控路径
func (h *DocumentHandler) Upload(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	docType := c.PostForm("type")
	if docType == "" {
		resp.FailValidation(c, "document type is required")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		resp.FailValidation(c, "file is required")
		return
	}

	stored := filepath.Join(h.uploadDir, utils.NewID()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, stored); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	doc, err := h.svc.Upload(c.Request.Context(), u.ID, docType, fh.Filename, stored)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.Created(c, "document uploaded successfully", doc)
}
