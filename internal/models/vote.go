package models

import (
	"time"
)

// Vote 的存在本身就是投票状态:第一次投票插入记录,再投一次删除记录。
// 不存在 value 字段,也不保留历史。
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	CommentID *uint     `gorm:"index" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// 每个用户对同一实体至多一条记录。
// (user_id, post_id) / (user_id, comment_id) 的唯一性带 NULL 时 GORM tag 表达不了,
// 用 PG 的 partial unique index 在 db.Init 里建,见 internal/db/db.go。
