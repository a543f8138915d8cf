package middleware

import (
	"net/http"

	"linknest/internal/db"
	"linknest/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser retrieves user from session and sets to context.
// 没登录就不设置,核心逻辑只看 context 里有没有用户。
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			result := db.DB.First(&user, userID)
			if result.Error == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "请先登录",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 从 context 取当前用户,匿名返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// ViewerID 当前浏览者的用户 ID,匿名为 0。
// 0 在投票投影的过滤条件里匹配不到任何行,匿名自然退化为"未投票"。
func ViewerID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}
