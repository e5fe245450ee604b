package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/leon37/StudentHub/internal/auth"
	"github.com/leon37/StudentHub/internal/model"
	"github.com/leon37/StudentHub/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	minPasswordLength = 6
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

// RegisterInput 注册参数
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// AuthResult 登录/注册成功后返回给客户端的内容
type AuthResult struct {
	Token string
	User  *model.User
}

// PasswordHasher is satisfied by *auth.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// decoyPassword is hashed once so unknown usernames cost one bcrypt comparison too.
const decoyPassword = "studenthub-decoy-password"

type AuthService struct {
	userRepo repository.UserRepo
	hasher   PasswordHasher
	tokens   *auth.TokenService
	now      func() time.Time
	logins   *prometheus.CounterVec

	decoyOnce sync.Once
	decoyHash string
}

type AuthOption func(*AuthService)

// WithAuthClock replaces time.Now for login timestamps.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// WithLoginCounter counts authentication attempts by outcome.
func WithLoginCounter(c *prometheus.CounterVec) AuthOption {
	return func(s *AuthService) {
		s.logins = c
	}
}

func NewAuthService(userRepo repository.UserRepo, hasher PasswordHasher, tokens *auth.TokenService, opts ...AuthOption) *AuthService {
	s := &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register 注册逻辑，成功后直接签发 Token
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	// 1. 参数校验
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, validation("Missing required fields")
	}
	if len(in.Password) < minPasswordLength {
		return nil, validation("Password must be at least 6 characters")
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, validation("Password must be at most 72 bytes")
	}

	// 2. 检查是否存在，给出具体的冲突字段；唯一索引兜底并发场景
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, internal("find existing user", err)
	}
	for _, u := range existing {
		if u.Username == in.Username {
			return nil, conflict(ErrDuplicateIdentity, "Username already exists")
		}
		if u.Email == in.Email {
			return nil, conflict(ErrDuplicateIdentity, "Email already exists")
		}
	}

	// 3. 密码加密
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, internal("register", err)
	}

	// 4. 落库
	id, err := uuid.NewV7()
	if err != nil {
		return nil, internal("generate user id", err)
	}
	user := &model.User{
		ID:       id.String(),
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		FullName: in.FullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		return nil, internal("register", err)
	}

	// 5. 签发 Token
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, internal("register", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Authenticate 校验账号密码并记录登录事件。origin 为调用方地址，可为空。
func (s *AuthService) Authenticate(ctx context.Context, username, password, origin string) (*model.User, error) {
	user, err := s.authenticate(ctx, username, password, origin)
	s.countLogin(err)
	return user, err
}

func (s *AuthService) authenticate(ctx context.Context, username, password, origin string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validation("Username and password required")
	}

	// 1. 查用户
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		// 用户不存在也做一次比对，响应耗时与密码错误一致
		s.checkDecoy(password)
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		return nil, internal("authenticate", err)
	}

	// 2. 比对密码
	if err := s.hasher.Check(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrBadCredential
		}
		return nil, internal("authenticate", err)
	}

	// 3. 记录登录
	at := s.now().UTC()
	var ip *string
	if origin != "" {
		ip = &origin
	}
	if err := s.userRepo.RecordLogin(ctx, user.ID, at, ip); err != nil {
		return nil, internal("record login", err)
	}
	user.LastLogin = &at
	user.LoginCount++
	return user, nil
}

// Login 登录逻辑，返回 Token 与用户信息
func (s *AuthService) Login(ctx context.Context, username, password, origin string) (*AuthResult, error) {
	user, err := s.Authenticate(ctx, username, password, origin)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, internal("login", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Verify resolves a bearer token into the identity it carries.
func (s *AuthService) Verify(token string) (model.AuthClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return model.AuthClaims{}, newError(ErrUnauthorized, "Unauthorized", err)
	}
	return claims.Identity(), nil
}

func (s *AuthService) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]model.User, error) {
	users, err := s.userRepo.FindByUsernameOrEmail(ctx, strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, internal("find users", err)
	}
	return users, nil
}

func (s *AuthService) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, internal("list users", err)
	}
	return users, nil
}

func (s *AuthService) ListWithLoginHistory(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListWithLoginHistory(ctx)
	if err != nil {
		return nil, internal("list users", err)
	}
	return users, nil
}

func (s *AuthService) checkDecoy(password string) {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(decoyPassword)
		if err != nil {
			slog.Error("hash decoy password", "error", err)
			return
		}
		s.decoyHash = hash
	})
	if s.decoyHash != "" {
		_ = s.hasher.Check(s.decoyHash, password)
	}
}

func (s *AuthService) countLogin(err error) {
	if s.logins == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, ErrUnauthorized):
		outcome = "rejected"
	case errors.Is(err, ErrValidation):
		outcome = "invalid"
	case err != nil:
		outcome = "error"
	}
	s.logins.WithLabelValues(outcome).Inc()
}
