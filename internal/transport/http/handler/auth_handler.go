package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type registerReq struct {
	Name     string `json:"name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=parent staff admin"`
	Phone    string `json:"phone" binding:"omitempty,min=10"`
	Address  string `json:"address" binding:"omitempty,max=255"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	id, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Name: in.Name, Email: in.Email, Password: in.Password,
		Role: in.Role, Phone: in.Phone, Address: in.Address,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	h.log.Info("user registered", zap.String("userId", id), zap.String("role", in.Role))
	resp.Created(c, "registered successfully, you can now login", gin.H{"userId": id})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=parent staff admin"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	out, err := h.svc.Login(c.Request.Context(), in.Email, in.Password, in.Role)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OKMsg(c, "login successful", out)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	p, err := h.svc.Profile(c.Request.Context(), u)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, p)
}
