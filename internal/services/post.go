package services

import (
	"errors"
	"strings"

	"linknest/internal/db"
	"linknest/internal/models"
	"linknest/internal/utils"

	"gorm.io/gorm"
)

// CreatePost 发布帖子。链接和正文至少填一项,标题必填。
func CreatePost(userID uint, title, url, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, &ValidationError{Message: "标题不能为空"}
	}
	if url == "" && content == "" {
		return nil, &ValidationError{Message: "链接和正文至少填写一项"}
	}

	post := models.Post{
		Pid:     utils.RandStringBytesMaskImpr(8),
		UserID:  userID,
		Title:   title,
		URL:     url,
		Content: content,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Preload("User").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost 帖子详情,带浏览者投票投影。匿名浏览者不报错,is_upvoted 恒为 false。
func GetPost(pid string, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := db.DB.Preload("User").
		Preload("Votes", "user_id = ?", viewerID).
		Where("pid = ?", pid).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.IsUpvoted = len(post.Votes) > 0
	post.ContentHTML = utils.RenderMarkdown(post.Content)
	return &post, nil
}

// ListPosts 帖子列表。作者和站点过滤各自可选,同时给出时取交集。
func ListPosts(p ListParams, viewerID uint) ([]models.Post, int, error) {
	query := db.DB.Model(&models.Post{})

	if p.Author != "" {
		// 先按用户名找作者再过滤,免得列表查询挂一个 join(参考节点过滤的写法)
		var author models.User
		if err := db.DB.Where("username = ?", p.Author).First(&author).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.Post{}, 0, nil
			}
			return nil, 0, err
		}
		query = query.Where("user_id = ?", author.ID)
	}
	if p.Site != "" {
		query = query.Where("url = ?", p.Site)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Distinct("id").Count(&total).Error; err != nil {
		return nil, 0, err
	}
	totalPages := TotalPages(total, p.Limit)

	var posts []models.Post
	err := query.
		Preload("User").
		Preload("Votes", "user_id = ?", viewerID).
		Order(p.OrderClause()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range posts {
		posts[i].IsUpvoted = len(posts[i].Votes) > 0
	}
	return posts, totalPages, nil
}

// GetUserProfile 用户主页:用户信息加其最近发布的帖子
func GetUserProfile(username string, p ListParams, viewerID uint) (*models.User, []models.Post, int, error) {
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, ErrUserNotFound
		}
		return nil, nil, 0, err
	}

	p.Author = username
	posts, totalPages, err := ListPosts(p, viewerID)
	if err != nil {
		return nil, nil, 0, err
	}
	return &user, posts, totalPages, nil
}
