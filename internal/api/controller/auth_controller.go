package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api/middleware"
	"github.com/leon37/StudentHub/internal/api/response"
	"github.com/leon37/StudentHub/internal/model"
	"github.com/leon37/StudentHub/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"max=255"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type VerifyResponse struct {
	Valid bool             `json:"valid"`
	User  model.AuthClaims `json:"user"`
}

// ==========================================
// Handlers
// ==========================================

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户，密码加密存储，成功后直接返回 Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册参数"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorBody "参数错误或用户已存在"
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register params invalid", "err", err)
		response.Error(c, http.StatusBadRequest, bindingMessage(err, "Missing required fields"))
		return
	}

	// 2. 业务逻辑
	res, err := ctrl.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		slog.Warn("register failed", "username", req.Username, "err", err)
		response.FromError(c, err)
		return
	}

	// 3. 成功响应
	slog.Info("user registered", "userID", res.User.ID)
	response.JSON(c, http.StatusCreated, AuthResponse{Token: res.Token, User: res.User})
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验账号密码，颁发 JWT Token，并记录登录历史
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody "账号或密码错误"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindingMessage(err, "Username and password required"))
		return
	}

	// 2. 业务逻辑，用户不存在与密码错误返回同样的提示
	res, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	if err != nil {
		slog.Warn("login failed", "username", req.Username, "err", err)
		response.FromError(c, err)
		return
	}

	// 3. 成功响应
	slog.Info("user logged in", "userID", res.User.ID)
	response.JSON(c, http.StatusOK, AuthResponse{Token: res.Token, User: res.User})
}

// Verify 校验 Token
// @Summary 校验 Token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} response.ErrorBody
// @Router /auth/verify [get]
func (ctrl *AuthController) Verify(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	response.JSON(c, http.StatusOK, VerifyResponse{Valid: true, User: claims})
}
