package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/apperrors"
)

// respondError 把服務層錯誤映射為對應的 HTTP 狀態碼
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// parseIDParam 解析路徑中的數字 ID，失敗時回傳 0
func parseIDParam(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
