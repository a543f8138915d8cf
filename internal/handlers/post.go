package handlers

import (
	"fmt"
	"net/http"
	"time"

	"linknest/internal/middleware"
	"linknest/internal/models"
	"linknest/internal/services"
	"linknest/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

type createPostRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// cachedPostPage 列表缓存条目
type cachedPostPage struct {
	Posts      []models.Post
	TotalPages int
}

func postListCacheKey(p services.ListParams) string {
	return fmt.Sprintf("posts:%s:%s:%d:%d:%s:%s", p.SortBy, p.Order, p.Limit, p.Page, p.Author, p.Site)
}

// invalidatePostListCaches 新帖或帖子分数变化后,主动失效默认参数的
// 第一页列表缓存。其余页等 TTL 自然过期。
func invalidatePostListCaches() {
	for _, sortBy := range []string{services.SortByPoints, services.SortByRecent} {
		p := services.NewListParams()
		p.SortBy = sortBy
		utils.GetCache().Delete(postListCacheKey(p))
	}
}

// List 帖子列表,支持 limit/page/sortBy/order/author/site
func (h *PostHandler) List(c *gin.Context) {
	p := ParseListParams(c)
	viewerID := middleware.ViewerID(c)

	// 只为匿名请求走共享缓存,登录用户的投票投影每次现查
	cacheKey := ""
	if viewerID == 0 {
		cacheKey = postListCacheKey(p)
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			if page, ok := cached.(cachedPostPage); ok {
				RespondPage(c, "", page.Posts, p.Page, page.TotalPages)
				return
			}
		}
	}

	posts, totalPages, err := services.ListPosts(p, viewerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	if cacheKey != "" {
		utils.GetCache().Set(cacheKey, cachedPostPage{Posts: posts, TotalPages: totalPages}, 1*time.Minute)
	}

	RespondPage(c, "", posts, p.Page, totalPages)
}

// Create 发布帖子
func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondFormError(c, "请求格式错误")
		return
	}

	post, err := services.CreatePost(user.ID, req.Title, req.URL, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 新帖要马上出现在列表里,失效第一页缓存
	invalidatePostListCaches()

	RespondOK(c, http.StatusCreated, "发布成功", post)
}

// Detail 帖子详情。共享数据走缓存,浏览者相关状态每次请求现查。
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")
	viewerID := middleware.ViewerID(c)

	cacheKey := "post:detail:" + pid
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if post, ok := cached.(models.Post); ok {
			post.IsUpvoted = services.HasVotedPost(post.ID, viewerID)
			RespondOK(c, http.StatusOK, "", post)
			return
		}
	}

	post, err := services.GetPost(pid, viewerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 缓存里不放浏览者的私有状态
	shared := *post
	shared.IsUpvoted = false
	shared.Votes = nil
	utils.GetCache().Set(cacheKey, shared, 1*time.Minute)

	RespondOK(c, http.StatusOK, "", post)
}
