package handlers

import (
	"linknest/internal/middleware"
	"linknest/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile 用户主页:用户信息加其发布的帖子(分页)
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	p := ParseListParams(c)
	viewerID := middleware.ViewerID(c)

	user, posts, totalPages, err := services.GetUserProfile(username, p, viewerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, "", gin.H{
		"user":  user,
		"posts": posts,
	}, p.Page, totalPages)
}
