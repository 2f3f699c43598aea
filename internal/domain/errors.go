package domain

import "errors"

// 业务错误：handler 层统一映射为 HTTP 状态码
var (
	ErrAdminRegistration  = errors.New("admin accounts cannot be created through registration")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrForbidden          = errors.New("forbidden")
	ErrWriteFailed        = errors.New("write failed")
)
