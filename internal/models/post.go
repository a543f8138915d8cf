package models

import (
	"time"
)

type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Pid          string    `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title        string    `gorm:"not null" json:"title"`
	URL          string    `json:"url"`                      // 可选,与 Content 二选一必填
	Content      string    `gorm:"type:text" json:"content"` // 可选,与 URL 二选一必填
	Points       int       `gorm:"default:0" json:"points"`
	CommentCount int       `gorm:"default:0" json:"comment_count"` // 含所有层级的评论,事务内维护
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 当前浏览者的投票投影,查询时按 viewer 过滤预加载,最多一条
	Votes []Vote `gorm:"foreignKey:PostID" json:"-"`

	// 非数据库字段,用于查询时填充
	IsUpvoted   bool   `gorm:"-" json:"is_upvoted"`
	ContentHTML string `gorm:"-" json:"content_html,omitempty"`
}
