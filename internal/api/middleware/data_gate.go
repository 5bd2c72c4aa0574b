package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/repository"
)

// DataGate 请求处理期间持有仓储共享闸门，演示数据重载只能在请求之间进行。
// skip 中的路由模板（如重载接口本身）不持有闸门，否则会与 Reload 互相等待。
func DataGate(repo *repository.Repository, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}
	return func(c *gin.Context) {
		if skipped[c.FullPath()] {
			c.Next()
			return
		}
		release := repo.Hold()
		defer release()
		c.Next()
	}
}
