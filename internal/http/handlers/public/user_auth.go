package public

import (
	"github.com/Karthikeyanbk4067/FitX/internal/http/response"
	"github.com/Karthikeyanbk4067/FitX/internal/models"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
	}
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	user, err := h.UserAuthService.Register(req.Username, req.Password)
	if err != nil {
		respondUserAuthError(c, err)
		return
	}

	response.Success(c, gin.H{"user": userView(user)})
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Username, req.Password)
	if err != nil {
		respondUserAuthError(c, err)
		return
	}

	response.Success(c, gin.H{
		"user":       userView(user),
		"token":      token,
		"expires_at": expiresAt,
	})
}

// GetCurrentUser 获取当前登录用户
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetUserByID(uid)
	if err != nil {
		respondUserAuthError(c, err)
		return
	}

	response.Success(c, gin.H{"user": userView(user)})
}
