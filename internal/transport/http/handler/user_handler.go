package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/service"
	mdw "adoptlink/internal/transport/http/middleware"
	resp "adoptlink/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

type updateProfileReq struct {
	Name    string `json:"name" binding:"required,max=64"`
	Phone   string `json:"phone" binding:"omitempty,min=10"`
	Address string `json:"address" binding:"omitempty,max=255"`

	MaritalStatus    string  `json:"marital_status" binding:"omitempty,max=32"`
	SpouseName       string  `json:"spouse_name" binding:"omitempty,max=64"`
	ChildrenCount    int     `json:"children_count" binding:"omitempty,min=0"`
	Occupation       string  `json:"occupation" binding:"omitempty,max=64"`
	AnnualIncome     float64 `json:"annual_income" binding:"omitempty,min=0"`
	HomeType         string  `json:"home_type" binding:"omitempty,max=32"`
	FamilyBackground string  `json:"family_background" binding:"omitempty,max=1000"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	var in updateProfileReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	err := h.svc.UpdateProfile(c.Request.Context(), u, service.UpdateProfileInput{
		Name: in.Name, Phone: in.Phone, Address: in.Address,
		MaritalStatus: in.MaritalStatus, SpouseName: in.SpouseName,
		ChildrenCount: in.ChildrenCount, Occupation: in.Occupation,
		AnnualIncome: in.AnnualIncome, HomeType: in.HomeType,
		FamilyBackground: in.FamilyBackground,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OKMsg(c, "profile updated successfully", nil)
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "access token required")
		return
	}
	var in changePasswordReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FailValidation(c, err.Error())
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), u.ID, in.CurrentPassword, in.NewPassword); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OKMsg(c, "password updated successfully", nil)
}
