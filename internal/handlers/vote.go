package handlers

import (
	"net/http"

	"linknest/internal/db"
	"linknest/internal/middleware"
	"linknest/internal/models"
	"linknest/internal/services"
	"linknest/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Toggle 切换投票:没投过就投,投过就取消,返回最新分数和状态
func (h *VoteHandler) Toggle(c *gin.Context) {
	user := middleware.CurrentUser(c)

	itemType := c.Param("type") // "post" or "comment"
	if itemType != services.EntityPost && itemType != services.EntityComment {
		RespondError(c, http.StatusBadRequest, "无效的投票对象类型")
		return
	}

	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		RespondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	result, err := services.ToggleVote(itemType, id, user.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 帖子分数变了,失效详情页和列表第一页缓存
	if itemType == services.EntityPost {
		var post models.Post
		if err := db.DB.Select("pid").First(&post, id).Error; err == nil {
			utils.GetCache().Delete("post:detail:" + post.Pid)
		}
		invalidatePostListCaches()
	}

	RespondOK(c, http.StatusOK, "", result)
}
