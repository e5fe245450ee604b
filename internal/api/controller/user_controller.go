package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api/response"
	"github.com/leon37/StudentHub/internal/model"
	"github.com/leon37/StudentHub/internal/service"
)

type UserController struct {
	authService *service.AuthService
}

func NewUserController(authService *service.AuthService) *UserController {
	return &UserController{authService: authService}
}

type UserListResponse struct {
	Users []model.User `json:"users"`
}

// List 用户列表
// @Summary 已登录过的用户及其登录历史
// @Description 默认只返回登录过的用户（按最近登录倒序）；scope=all 返回全部用户
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param scope query string false "all 表示全部用户"
// @Success 200 {object} UserListResponse
// @Failure 401 {object} response.ErrorBody
// @Router /users [get]
func (ctrl *UserController) List(c *gin.Context) {
	var (
		users []model.User
		err   error
	)
	if c.Query("scope") == "all" {
		users, err = ctrl.authService.ListAll(c.Request.Context())
	} else {
		users, err = ctrl.authService.ListWithLoginHistory(c.Request.Context())
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, UserListResponse{Users: users})
}
