package handlers

import (
	"net/http"
	"strings"

	"linknest/internal/db"
	"linknest/internal/middleware"
	"linknest/internal/models"
	"linknest/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup 注册新用户并直接建立会话
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondFormError(c, "请求格式错误")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		RespondFormError(c, "用户名不能为空")
		return
	}
	if !strings.Contains(req.Email, "@") {
		RespondFormError(c, "邮箱格式错误")
		return
	}
	if len(req.Password) < 6 {
		RespondFormError(c, "密码至少 6 位")
		return
	}

	// 用户名/邮箱唯一性属于身份层的冲突,提前查一次给出友好提示,
	// 并发下的兜底仍是唯一索引
	var count int64
	db.DB.Model(&models.User{}).Where("username = ? OR email = ?", req.Username, req.Email).Count(&count)
	if count > 0 {
		RespondFormError(c, "用户名或邮箱已被注册")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		RespondFormError(c, "用户名或邮箱已被注册")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	RespondOK(c, http.StatusCreated, "注册成功", user)
}

// Login 邮箱加密码登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondFormError(c, "请求格式错误")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		RespondFormError(c, "邮箱或密码错误")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		RespondFormError(c, "邮箱或密码错误")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	RespondOK(c, http.StatusOK, "登录成功", user)
}

// Logout 清除会话
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	RespondOK(c, http.StatusOK, "已退出登录", nil)
}

// Me 当前登录用户,匿名时 data 为 null 而不是报错
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		RespondOK(c, http.StatusOK, "", nil)
		return
	}
	RespondOK(c, http.StatusOK, "", user)
}
