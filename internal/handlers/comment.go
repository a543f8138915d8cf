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

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type createCommentRequest struct {
	Content   string `json:"content"`
	ParentCid string `json:"parent_cid"`
}

// ListByPost 某帖子的顶层评论,includeChildren=true 时每条附带最多
// services.CommentChildrenCap 条子评论
func (h *CommentHandler) ListByPost(c *gin.Context) {
	pid := c.Param("pid")
	p := ParseListParams(c)
	viewerID := middleware.ViewerID(c)

	comments, totalPages, err := services.ListPostComments(pid, p, viewerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, "", comments, p.Page, totalPages)
}

// ListReplies 某评论的直接回复,翻页用,不再嵌套子评论
func (h *CommentHandler) ListReplies(c *gin.Context) {
	cid := c.Param("cid")
	p := ParseListParams(c)
	viewerID := middleware.ViewerID(c)

	replies, totalPages, err := services.ListReplies(cid, p, viewerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, "", replies, p.Page, totalPages)
}

// Create 发表评论,parent_cid 非空时是对评论的回复
func (h *CommentHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	pid := c.Param("pid")

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondFormError(c, "请求格式错误")
		return
	}

	comment, err := services.CreateComment(pid, req.ParentCid, user.ID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 评论数变了,主动失效详情页缓存。回复的归属帖子以父评论为准,
	// 不能直接拿路径里的 pid。
	var post models.Post
	if err := db.DB.Select("pid").First(&post, comment.PostID).Error; err == nil {
		utils.GetCache().Delete("post:detail:" + post.Pid)
	}

	RespondOK(c, http.StatusCreated, "评论成功", comment)
}
