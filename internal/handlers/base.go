package handlers

import (
	"log"
	"net/http"

	"linknest/internal/services"

	"github.com/gin-gonic/gin"
)

// Pagination 分页响应的附加信息
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// RespondOK 成功响应 {success, message, data}
func RespondOK(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// RespondPage 分页成功响应,data 是有序列表,附带 pagination
func RespondPage(c *gin.Context, message string, data interface{}, page, totalPages int) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": Pagination{Page: page, TotalPages: totalPages},
	})
}

// RespondError 失败响应 {success:false, error}
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondFormError 表单类失败响应,额外带 isFormError 供前端区分
func RespondFormError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":     false,
		"error":       message,
		"isFormError": true,
	})
}

// HandleError 把 service 层的错误分类映射成 HTTP 响应
func HandleError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		RespondFormError(c, err.Error())
	case services.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		RespondError(c, http.StatusInternalServerError, "服务器内部错误")
	}
}
