package handler

import (
	"errors"

	"pet-game/internal/service"
	"pet-game/pkg/jwt"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email"`
		Password string `json:"password" binding:"required"`
		Nickname string `json:"nickname"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Register(r.Username, r.Email, r.Password, r.Nickname)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "注册成功", &response.RegisterResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
		Password        string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Login(r.UsernameOrEmail, r.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "登录成功", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Logout 用户登出（需要JWT认证）
func (h *UserHandler) Logout(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if err := h.service.Logout(userID); err != nil {
		response.InternalError(c, "登出失败")
		return
	}
	response.SuccessWithMessage(c, "登出成功", nil)
}

// GetProfile 获取用户资料（需要JWT认证）
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	user, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "获取用户资料失败")
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// GetPreferences 获取用户偏好
func (h *UserHandler) GetPreferences(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	pref, err := h.service.GetPreference(userID)
	if err != nil {
		response.InternalError(c, "获取偏好失败")
		return
	}
	response.Success(c, response.FilterPreferenceInfo(pref))
}

// UpdatePreferences 更新用户偏好
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	type req struct {
		SoundEnabled   *bool   `json:"sound_enabled"`
		NotifyFriend   *bool   `json:"notify_friend"`
		NotifyInvite   *bool   `json:"notify_invite"`
		ShowOnlineOnly *bool   `json:"show_online_only"`
		Theme          *string `json:"theme"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pref, err := h.service.GetPreference(userID)
	if err != nil {
		response.InternalError(c, "获取偏好失败")
		return
	}
	if r.SoundEnabled != nil {
		pref.SoundEnabled = *r.SoundEnabled
	}
	if r.NotifyFriend != nil {
		pref.NotifyFriend = *r.NotifyFriend
	}
	if r.NotifyInvite != nil {
		pref.NotifyInvite = *r.NotifyInvite
	}
	if r.ShowOnlineOnly != nil {
		pref.ShowOnlineOnly = *r.ShowOnlineOnly
	}
	if r.Theme != nil {
		pref.Theme = *r.Theme
	}
	pref.UserID = userID

	if err := h.service.UpdatePreference(pref); err != nil {
		response.InternalError(c, "更新偏好失败")
		return
	}
	response.SuccessWithMessage(c, "偏好已更新", response.FilterPreferenceInfo(pref))
}
