package public

import (
	handlershared "github.com/Karthikeyanbk4067/FitX/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getContextUintWithKeys(c *gin.Context, key, invalidMsg, typeInvalidMsg string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidMsg, typeInvalidMsg)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "user_id", "用户标识无效", "用户标识类型错误")
}

// getOptionalUserID 读取可选的登录用户，未登录时返回 0。
func getOptionalUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if uid, ok := value.(uint); ok {
		return uid
	}
	return 0
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
