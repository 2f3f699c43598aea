package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adoptlink/internal/domain"
)

// FromError 业务错误 → HTTP 状态码；未识别的一律 500 且不外漏细节
func FromError(c *gin.Context, l *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrAdminRegistration):
		Fail(c, http.StatusBadRequest, "admin accounts cannot be created through registration")
	case errors.Is(err, domain.ErrDuplicateEmail):
		Fail(c, http.StatusConflict, "user with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrAccountNotVerified):
		Fail(c, http.StatusForbidden, "account is pending verification, please contact administrator")
	case errors.Is(err, domain.ErrConflict):
		Fail(c, http.StatusConflict, "application already submitted for this child")
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		Fail(c, http.StatusForbidden, "insufficient permissions")
	default:
		if l != nil {
			l.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
