package public

import (
	"github.com/Karthikeyanbk4067/FitX/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ChatRequest 客服对话请求
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat 客服助手对话
// 无需登录即可使用；已登录用户的回复会结合其订单历史。
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	uid := getOptionalUserID(c)
	reply := h.AssistantService.Chat(c.Request.Context(), uid, req.Message)
	response.Success(c, gin.H{"response": reply})
}
