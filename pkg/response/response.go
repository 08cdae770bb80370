package response

import (
	"net/http"

	"pet-game/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`            // 状态码：0表示成功，其他表示错误
	Message string      `json:"message"`         // 响应消息
	Data    interface{} `json:"data,omitempty"`  // 响应数据
	Error   string      `json:"error,omitempty"` // 错误详情（仅在开发环境显示）
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带自定义消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带错误详情的错误响应
func ErrorWithDetails(c *gin.Context, code int, message string, err error) {
	resp := Response{
		Code:    code,
		Message: message,
	}
	// 仅开发环境回传错误详情
	if gin.Mode() == gin.DebugMode && err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// Conflict 409错误
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// TooManyRequests 429错误（冷却中）
func TooManyRequests(c *gin.Context, message string) {
	Error(c, 429, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}

// UserInfo 用户信息（隐藏敏感字段）
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Status    string `json:"status"`
	Coins     int    `json:"coins"`
	LastSeen  string `json:"last_seen"`
	CreatedAt string `json:"created_at"`
}

// FilterUserInfo 过滤用户信息，隐藏敏感字段
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}
	return &UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		Status:    user.Status,
		Coins:     user.Coins,
		LastSeen:  user.LastSeen.Format("2006-01-02 15:04:05"),
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// LoginResponse 登录响应
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// FriendInfo 好友列表条目：用户信息加在线状态
type FriendInfo struct {
	ID       uint          `json:"id"`
	Username string        `json:"username"`
	Nickname string        `json:"nickname"`
	Avatar   string        `json:"avatar"`
	Status   string        `json:"status"`
	LastSeen string        `json:"last_seen"`
	Pets     []*PetSummary `json:"pets"`
}

// PetSummary 好友/搜索结果里的宠物摘要
type PetSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level int    `json:"level"`
}

// FilterPetSummary 过滤宠物摘要
func FilterPetSummary(pet *model.Pet) *PetSummary {
	if pet == nil {
		return nil
	}
	return &PetSummary{
		ID:    pet.ID,
		Name:  pet.Name,
		Type:  pet.Type,
		Level: pet.Level,
	}
}

// FilterFriendInfo 过滤好友信息，status 以在线缓存为准
func FilterFriendInfo(user *model.User, status string, pet *model.Pet) *FriendInfo {
	if user == nil {
		return nil
	}
	pets := make([]*PetSummary, 0, 1)
	if p := FilterPetSummary(pet); p != nil {
		pets = append(pets, p)
	}
	return &FriendInfo{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Status:   status,
		LastSeen: user.LastSeen.Format("2006-01-02 15:04:05"),
		Pets:     pets,
	}
}

// FriendRequestInfo 好友请求条目
type FriendRequestInfo struct {
	ID        uint      `json:"id"`
	Sender    *UserInfo `json:"sender,omitempty"`
	Receiver  *UserInfo `json:"receiver,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// FilterFriendRequestInfo 过滤好友请求信息
func FilterFriendRequestInfo(req *model.FriendRequest, sender, receiver *model.User) *FriendRequestInfo {
	if req == nil {
		return nil
	}
	return &FriendRequestInfo{
		ID:        req.ID,
		Sender:    FilterUserInfo(sender),
		Receiver:  FilterUserInfo(receiver),
		Status:    req.Status,
		Message:   req.Message,
		CreatedAt: req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// SearchUserInfo 用户搜索结果条目
// is_friend 与 has_pending_request 在响应生成时实时计算
type SearchUserInfo struct {
	ID                uint          `json:"id"`
	Username          string        `json:"username"`
	Nickname          string        `json:"nickname"`
	Avatar            string        `json:"avatar"`
	Status            string        `json:"status"`
	IsFriend          bool          `json:"is_friend"`
	HasPendingRequest bool          `json:"has_pending_request"`
	FriendCount       int64         `json:"friend_count"`
	Pets              []*PetSummary `json:"pets"`
}

// FilterSearchUserInfo 过滤搜索结果
func FilterSearchUserInfo(user *model.User, isFriend, hasPending bool, friendCount int64, pet *model.Pet) *SearchUserInfo {
	if user == nil {
		return nil
	}
	pets := make([]*PetSummary, 0, 1)
	if p := FilterPetSummary(pet); p != nil {
		pets = append(pets, p)
	}
	return &SearchUserInfo{
		ID:                user.ID,
		Username:          user.Username,
		Nickname:          user.Nickname,
		Avatar:            user.Avatar,
		Status:            user.Status,
		IsFriend:          isFriend,
		HasPendingRequest: hasPending,
		FriendCount:       friendCount,
		Pets:              pets,
	}
}

// InvitationInfo 游戏邀请条目，对外只暴露 PublicID
type InvitationInfo struct {
	ID        string    `json:"id"`
	Sender    *UserInfo `json:"sender,omitempty"`
	Receiver  *UserInfo `json:"receiver,omitempty"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	ExpiresAt string    `json:"expires_at"`
	CreatedAt string    `json:"created_at"`
}

// FilterInvitationInfo 过滤邀请信息
func FilterInvitationInfo(inv *model.Invitation, sender, receiver *model.User) *InvitationInfo {
	if inv == nil {
		return nil
	}
	return &InvitationInfo{
		ID:        inv.PublicID,
		Sender:    FilterUserInfo(sender),
		Receiver:  FilterUserInfo(receiver),
		Type:      inv.Type,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt.Format("2006-01-02 15:04:05"),
		CreatedAt: inv.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// NotificationInfo 通知条目
type NotificationInfo struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Payload   string `json:"payload,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// FilterNotificationInfo 过滤通知信息
func FilterNotificationInfo(n *model.Notification) *NotificationInfo {
	if n == nil {
		return nil
	}
	return &NotificationInfo{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Content:   n.Content,
		Payload:   n.Payload,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// PreferenceInfo 用户偏好
type PreferenceInfo struct {
	SoundEnabled   bool   `json:"sound_enabled"`
	NotifyFriend   bool   `json:"notify_friend"`
	NotifyInvite   bool   `json:"notify_invite"`
	ShowOnlineOnly bool   `json:"show_online_only"`
	Theme          string `json:"theme"`
}

// FilterPreferenceInfo 过滤偏好信息
func FilterPreferenceInfo(p *model.UserPreference) *PreferenceInfo {
	if p == nil {
		return nil
	}
	return &PreferenceInfo{
		SoundEnabled:   p.SoundEnabled,
		NotifyFriend:   p.NotifyFriend,
		NotifyInvite:   p.NotifyInvite,
		ShowOnlineOnly: p.ShowOnlineOnly,
		Theme:          p.Theme,
	}
}
