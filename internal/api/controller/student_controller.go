package controller

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api/response"
	"github.com/leon37/StudentHub/internal/service"
)

type StudentController struct {
	service *service.StudentService
}

// NewStudentController 构造函数
func NewStudentController(s *service.StudentService) *StudentController {
	return &StudentController{service: s}
}

// ==========================================
// DTOs
// ==========================================

// CreateStudentRequest 创建学生，gpa/status/enrollmentDate 不传则使用默认值
type CreateStudentRequest struct {
	FirstName      string   `json:"firstName" binding:"required,max=100"`
	LastName       string   `json:"lastName" binding:"required,max=100"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"max=50"`
	DateOfBirth    string   `json:"dateOfBirth"`
	EnrollmentDate string   `json:"enrollmentDate"`
	GPA            *float64 `json:"gpa"`
	Status         string   `json:"status"`
}

// UpdateStudentRequest 局部更新，只修改传入的字段
type UpdateStudentRequest struct {
	FirstName      *string  `json:"firstName" binding:"omitempty,max=100"`
	LastName       *string  `json:"lastName" binding:"omitempty,max=100"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Phone          *string  `json:"phone" binding:"omitempty,max=50"`
	DateOfBirth    *string  `json:"dateOfBirth"`
	EnrollmentDate *string  `json:"enrollmentDate"`
	GPA            *float64 `json:"gpa"`
	Status         *string  `json:"status"`
}

// ==========================================
// Handlers
// ==========================================

// List 学生列表
// @Summary 学生列表
// @Description 按创建时间倒序返回全部学生
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Student
// @Failure 401 {object} response.ErrorBody
// @Router /students [get]
func (ctrl *StudentController) List(c *gin.Context) {
	students, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get 学生详情
// @Summary 学生详情
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "学生 ID"
// @Success 200 {object} model.Student
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [get]
func (ctrl *StudentController) Get(c *gin.Context) {
	student, err := ctrl.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Create 创建学生
// @Summary 创建学生
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStudentRequest true "学生信息"
// @Success 201 {object} model.Student
// @Failure 400 {object} response.ErrorBody "参数错误或邮箱已存在"
// @Router /students [post]
func (ctrl *StudentController) Create(c *gin.Context) {
	var req CreateStudentRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindingMessage(err, "First name, last name, and email are required"))
		return
	}

	// 2. 业务逻辑
	student, err := ctrl.service.Create(c.Request.Context(), service.StudentInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		EnrollmentDate: req.EnrollmentDate,
		GPA:            req.GPA,
		Status:         req.Status,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	slog.Info("student created", "studentID", student.ID)
	response.JSON(c, http.StatusCreated, student)
}

// Update 更新学生
// @Summary 更新学生
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "学生 ID"
// @Param request body UpdateStudentRequest true "需要修改的字段"
// @Success 200 {object} model.Student
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [put]
func (ctrl *StudentController) Update(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindingMessage(err, "Invalid request body"))
		return
	}

	student, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), service.StudentPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		EnrollmentDate: req.EnrollmentDate,
		GPA:            req.GPA,
		Status:         req.Status,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	slog.Info("student updated", "studentID", student.ID)
	response.JSON(c, http.StatusOK, student)
}

// Delete 删除学生
// @Summary 删除学生
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path string true "学生 ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [delete]
func (ctrl *StudentController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	slog.Info("student deleted", "studentID", id)
	response.Message(c, "Student deleted")
}

// Search 搜索学生
// @Summary 按姓名或邮箱搜索学生
// @Description 不区分大小写的子串匹配
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param query path string true "关键词"
// @Success 200 {array} model.Student
// @Failure 400 {object} response.ErrorBody
// @Router /students/search/{query} [get]
func (ctrl *StudentController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		response.Error(c, http.StatusBadRequest, "Search query required")
		return
	}

	students, err := ctrl.service.Search(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Statistics 统计信息
// @Summary 学生统计
// @Description 总数、在读、休学人数与平均 GPA
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Statistics
// @Failure 401 {object} response.ErrorBody
// @Router /statistics [get]
func (ctrl *StudentController) Statistics(c *gin.Context) {
	stats, err := ctrl.service.Statistics(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
