package services

import (
	"errors"

	"linknest/internal/db"
	"linknest/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	EntityPost    = "post"
	EntityComment = "comment"
)

// VoteResult 切换后的最新状态
type VoteResult struct {
	Points  int  `json:"points"`
	Upvoted bool `json:"upvoted"`
}

// ToggleVote 切换投票状态:没投过就投一票(+1),投过就取消(-1)。
// 整个检查-增删-计数在一个事务里完成,先用 FOR UPDATE 锁住实体行,
// 同一实体上的并发切换串行化,不会丢更新。
func ToggleVote(kind string, entityID uint, userID uint) (VoteResult, error) {
	var res VoteResult
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		switch kind {
		case EntityPost:
			return togglePostVote(tx, entityID, userID, &res)
		case EntityComment:
			return toggleCommentVote(tx, entityID, userID, &res)
		default:
			return &ValidationError{Message: "无效的投票对象类型"}
		}
	})
	return res, err
}

func togglePostVote(tx *gorm.DB, postID, userID uint, res *VoteResult) error {
	var post models.Post
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	// 是否已投票
	var vote models.Vote
	err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error
	if err == nil {
		// 已投过,取消:删记录,-1
		if err := tx.Delete(&vote).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("points", gorm.Expr("points - ?", 1)).Error; err != nil {
			return err
		}
		res.Points = post.Points - 1
		res.Upvoted = false
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// 没投过,投票:插记录,+1
	newVote := models.Vote{UserID: userID, PostID: &postID}
	if err := tx.Create(&newVote).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("points", gorm.Expr("points + ?", 1)).Error; err != nil {
		return err
	}
	res.Points = post.Points + 1
	res.Upvoted = true
	return nil
}

func toggleCommentVote(tx *gorm.DB, commentID, userID uint, res *VoteResult) error {
	var comment models.Comment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	var vote models.Vote
	err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&vote).Error
	if err == nil {
		if err := tx.Delete(&vote).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
			UpdateColumn("points", gorm.Expr("points - ?", 1)).Error; err != nil {
			return err
		}
		res.Points = comment.Points - 1
		res.Upvoted = false
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	newVote := models.Vote{UserID: userID, CommentID: &commentID}
	if err := tx.Create(&newVote).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
		UpdateColumn("points", gorm.Expr("points + ?", 1)).Error; err != nil {
		return err
	}
	res.Points = comment.Points + 1
	res.Upvoted = true
	return nil
}

// HasVotedPost 当前浏览者是否已给帖子投票。匿名 (userID=0) 永远返回 false。
func HasVotedPost(postID, userID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	db.DB.Model(&models.Vote{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count)
	return count > 0
}
