package handlers

import (
	"linknest/internal/services"
	"linknest/internal/utils"

	"github.com/gin-gonic/gin"
)

// ParseListParams 解析分页/排序查询参数,非法值一律回落到默认值
func ParseListParams(c *gin.Context) services.ListParams {
	p := services.NewListParams()

	if v := c.Query("limit"); v != "" {
		if limit := utils.StringToInt(v); limit > 0 {
			p.Limit = limit
		}
	}
	if v := c.Query("page"); v != "" {
		if page := utils.StringToInt(v); page >= 1 {
			p.Page = page
		}
	}
	if v := c.Query("sortBy"); v == services.SortByPoints || v == services.SortByRecent {
		p.SortBy = v
	}
	if v := c.Query("order"); v == services.OrderAsc || v == services.OrderDesc {
		p.Order = v
	}

	p.Author = c.Query("author")
	p.Site = c.Query("site")
	p.IncludeChildren = c.Query("includeChildren") == "true" || c.Query("includeChildren") == "1"

	return p
}
