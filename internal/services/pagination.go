package services

import (
	"fmt"
	"math"
)

const DefaultPageSize = 10

const (
	SortByPoints = "points"
	SortByRecent = "recent"
	OrderAsc     = "asc"
	OrderDesc    = "desc"
)

// ListParams 列表查询的通用参数,帖子列表和两种评论列表共用同一套分页规则
type ListParams struct {
	Limit  int
	Page   int
	SortBy string // points | recent
	Order  string // asc | desc

	Author          string // 可选,按作者用户名过滤(帖子列表)
	Site            string // 可选,按 URL 精确匹配过滤(帖子列表)
	IncludeChildren bool   // 可选,附带子评论(顶层评论列表)
}

// NewListParams 返回默认参数:每页 10 条,第 1 页,按 points 倒序
func NewListParams() ListParams {
	return ListParams{
		Limit:  DefaultPageSize,
		Page:   1,
		SortBy: SortByPoints,
		Order:  OrderDesc,
	}
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause 统一的排序规则。id 升序兜底,并列时保持插入顺序。
func (p ListParams) OrderClause() string {
	col := "points"
	if p.SortBy == SortByRecent {
		col = "created_at"
	}
	dir := "DESC"
	if p.Order == OrderAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s, id ASC", col, dir)
}

// TotalPages 计算总页数 ceil(total/limit)
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
