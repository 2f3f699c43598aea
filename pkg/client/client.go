// Package client 是 AdoptLink API 的 Go 客户端。
// 会话状态（token + 用户快照）收在 Session 对象里显式传递，
// 任何一次 401 都会统一销毁会话，调用方收到 ErrSessionExpired 后重新登录。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrSessionExpired 会话已被服务端拒绝（token 过期 / 用户被删）
var ErrSessionExpired = errors.New("session expired, login required")

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Session struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
	user  *User
}

func NewSession(baseURL string) *Session {
	return &Session{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

// APIError 服务端返回的非 2xx 业务错误
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	s.mu.Lock()
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	s.mu.Unlock()

	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// 401 一律视为会话失效，本地状态同步销毁
	if res.StatusCode == http.StatusUnauthorized {
		s.reset()
		return ErrSessionExpired
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if res.StatusCode >= 400 || !env.Success {
		return &APIError{Status: res.StatusCode, Message: env.Message}
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (s *Session) reset() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Token 当前会话 token，未登录为空串
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User 登录时缓存的用户快照
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Register 注册不会建立会话；随后需显式 Login
func (s *Session) Register(ctx context.Context, in RegisterRequest) (string, error) {
	var out struct {
		UserID string `json:"userId"`
	}
	if err := s.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return "", err
	}
	return out.UserID, nil
}

func (s *Session) Login(ctx context.Context, email, password, role string) error {
	in := map[string]string{"email": email, "password": password, "role": role}
	var out struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	if err := s.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = out.Token
	s.user = out.User
	s.mu.Unlock()
	return nil
}

// Logout 本地丢弃会话即可，服务端无状态
func (s *Session) Logout() { s.reset() }

func (s *Session) Profile(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Children(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.do(ctx, http.MethodGet, "/api/children", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) SubmitApplication(ctx context.Context, childID string) (string, error) {
	var out struct {
		ApplicationID string `json:"applicationId"`
	}
	in := map[string]string{"child_id": childID}
	if err := s.do(ctx, http.MethodPost, "/api/applications", in, &out); err != nil {
		return "", err
	}
	return out.ApplicationID, nil
}

func (s *Session) MyApplications(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.do(ctx, http.MethodGet, "/api/applications/my-applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MyVisits(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.do(ctx, http.MethodGet, "/api/visits/my-visits", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MyDocuments(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.do(ctx, http.MethodGet, "/api/documents/my-documents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Tasks(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.do(ctx, http.MethodGet, "/api/staff/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Dashboard(ctx context.Context) (map[string]int64, error) {
	var out map[string]int64
	if err := s.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
