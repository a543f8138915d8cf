package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"linknest/internal/db"
	"linknest/internal/models"
	"linknest/internal/utils"

	"gorm.io/gorm"
)

// CommentChildrenCap 顶层评论列表附带的子评论数量上限。
// 超出的部分不分页,客户端走回复列表接口继续翻。
const CommentChildrenCap = 2

// MinCommentLength 评论内容最少字符数
const MinCommentLength = 3

// CreateComment 发表评论。三步一个事务:
//  1. 有父评论时取父评论定深度和所属帖子(父评论的 post_id 为准,调用方传来的帖子不作数),父评论回复数 +1
//  2. 帖子评论数 +1
//  3. 插入评论行
//
// 任一目标缺失整个事务回滚,计数和新行要么全生效要么全不生效。
func CreateComment(postPid string, parentCid string, userID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < MinCommentLength {
		return nil, &ValidationError{Message: "评论内容至少 3 个字符"}
	}

	var comment models.Comment
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		depth := 0
		var postID uint
		var parentID *uint

		if parentCid != "" {
			var parent models.Comment
			if err := tx.Where("cid = ?", parentCid).First(&parent).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrParentNotFound
				}
				return err
			}
			depth = parent.Depth + 1
			parentID = &parent.ID
			postID = parent.PostID

			if err := tx.Model(&models.Comment{}).Where("id = ?", parent.ID).
				UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error; err != nil {
				return err
			}
		} else {
			var post models.Post
			if err := tx.Where("pid = ?", postPid).First(&post).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPostNotFound
				}
				return err
			}
			postID = post.ID
		}

		result := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostNotFound
		}

		comment = models.Comment{
			Cid:      utils.RandStringBytesMaskImpr(8),
			PostID:   postID,
			UserID:   userID,
			ParentID: parentID,
			Depth:    depth,
			Content:  content,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Preload("User").First(&comment, comment.ID).Error
	})
	if err != nil {
		return nil, err
	}

	// 新评论还没有任何投票
	comment.Votes = []models.Vote{}
	comment.ContentHTML = utils.RenderMarkdown(comment.Content)
	return &comment, nil
}

// ListPostComments 某帖子的顶层评论(parent_id IS NULL 且 post_id = P)
func ListPostComments(postPid string, p ListParams, viewerID uint) ([]models.Comment, int, error) {
	var post models.Post
	if err := db.DB.Where("pid = ?", postPid).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrPostNotFound
		}
		return nil, 0, err
	}
	scope := func(q *gorm.DB) *gorm.DB {
		return q.Where("post_id = ? AND parent_id IS NULL", post.ID)
	}
	return listComments(scope, p, viewerID, p.IncludeChildren)
}

// ListReplies 某评论的直接回复(parent_id = C)
func ListReplies(parentCid string, p ListParams, viewerID uint) ([]models.Comment, int, error) {
	var parent models.Comment
	if err := db.DB.Where("cid = ?", parentCid).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrCommentNotFound
		}
		return nil, 0, err
	}
	scope := func(q *gorm.DB) *gorm.DB {
		return q.Where("parent_id = ?", parent.ID)
	}
	return listComments(scope, p, viewerID, false)
}

// listComments 两种范围共用的列表逻辑。总数按去重后的评论 id 统计,
// 不受投票/子评论 join 扇出影响。浏览者投票投影按 viewerID 过滤预加载,
// 匿名时 viewerID=0 匹配不到任何行,自然退化为空集合。
func listComments(scope func(*gorm.DB) *gorm.DB, p ListParams, viewerID uint, includeChildren bool) ([]models.Comment, int, error) {
	var total int64
	if err := scope(db.DB.Model(&models.Comment{})).Distinct("id").Count(&total).Error; err != nil {
		return nil, 0, err
	}
	totalPages := TotalPages(total, p.Limit)

	var comments []models.Comment
	err := scope(db.DB).
		Preload("User").
		Preload("Votes", "user_id = ?", viewerID).
		Order(p.OrderClause()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range comments {
		if comments[i].Votes == nil {
			comments[i].Votes = []models.Vote{}
		}
		comments[i].ContentHTML = utils.RenderMarkdown(comments[i].Content)
	}

	if includeChildren {
		if err := fillChildren(comments, p, viewerID); err != nil {
			return nil, 0, err
		}
	}

	return comments, totalPages, nil
}

// fillChildren 批量加载当前页评论的直接子评论并按父分组,
// 每个父评论最多保留 CommentChildrenCap 条,排序跟随父列表。
func fillChildren(comments []models.Comment, p ListParams, viewerID uint) error {
	if len(comments) == 0 {
		return nil
	}

	// 收集当前页的评论ID
	parentIDs := make([]uint, len(comments))
	for i, c := range comments {
		parentIDs[i] = c.ID
	}

	var children []models.Comment
	err := db.DB.Where("parent_id IN ?", parentIDs).
		Preload("User").
		Preload("Votes", "user_id = ?", viewerID).
		Order(p.OrderClause()).
		Find(&children).Error
	if err != nil {
		return err
	}

	// 建立映射,全局排序下按出现顺序分组即是组内顺序
	childMap := make(map[uint][]models.Comment)
	for _, child := range children {
		pid := *child.ParentID
		if len(childMap[pid]) >= CommentChildrenCap {
			continue
		}
		if child.Votes == nil {
			child.Votes = []models.Vote{}
		}
		child.ContentHTML = utils.RenderMarkdown(child.Content)
		childMap[pid] = append(childMap[pid], child)
	}

	for i := range comments {
		comments[i].Children = childMap[comments[i].ID]
	}
	return nil
}
