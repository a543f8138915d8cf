package models

import (
	"time"
)

type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Cid          string    `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	Post         Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID     *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent       *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Depth        int       `gorm:"default:0" json:"depth"`         // 0 = 顶层,子评论为 parent.Depth+1
	CommentCount int       `gorm:"default:0" json:"comment_count"` // 直接回复数,事务内维护
	Points       int       `gorm:"default:0" json:"points"`
	CreatedAt    time.Time `json:"created_at"`
	// No UpdatedAt, comments are never edited

	// 当前浏览者的投票投影,零或一条,公开形态就是集合而非布尔
	Votes []Vote `gorm:"foreignKey:CommentID" json:"votes"`

	// 非数据库字段,用于查询时填充
	Children    []Comment `gorm:"-" json:"children,omitempty"` // 最多 CommentChildrenCap 条
	ContentHTML string    `gorm:"-" json:"content_html,omitempty"`
}
