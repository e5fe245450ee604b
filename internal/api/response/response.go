package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/service"
)

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 无数据载荷时的成功响应
type MessageBody struct {
	Message string `json:"message"`
}

// JSON 成功响应，直接输出业务对象
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message 只返回提示信息
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: msg})
}

// FromError maps a service error kind onto its HTTP status. Internal causes are
// logged here and never sent to the client.
func FromError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := "Internal server error"

	var svcErr *service.Error
	if errors.As(err, &svcErr) && status != http.StatusInternalServerError {
		msg = svcErr.Message()
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	Error(c, status, msg)
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
