package handler

import (
	"errors"
	"strconv"

	"pet-game/internal/model"
	"pet-game/internal/service"
	"pet-game/pkg/jwt"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	service *service.FriendService
	userSvc *service.UserService
}

func NewFriendHandler(s *service.FriendService, userSvc *service.UserService) *FriendHandler {
	return &FriendHandler{service: s, userSvc: userSvc}
}

// ListFriends 好友列表（附带实时在线状态）
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	friends, status, pets, err := h.service.ListFriends(userID)
	if err != nil {
		response.InternalError(c, "获取好友列表失败")
		return
	}

	out := make([]*response.FriendInfo, 0, len(friends))
	for _, u := range friends {
		out = append(out, response.FilterFriendInfo(u, status[u.ID], pets[u.ID]))
	}
	response.Success(c, out)
}

// SendRequest 发送好友请求
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	type req struct {
		ReceiverID uint   `json:"receiver_id"`
		Username   string `json:"username"`
		Message    string `json:"message"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if r.ReceiverID == 0 && r.Username == "" {
		response.BadRequest(c, "receiver_id 和 username 至少提供一个")
		return
	}

	var request *model.FriendRequest
	var err error
	if r.ReceiverID != 0 {
		request, err = h.service.SendRequest(userID, r.ReceiverID, r.Message)
	} else {
		request, err = h.service.SendRequestByUsername(userID, r.Username, r.Message)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrSelfRequest),
			errors.Is(err, service.ErrAlreadyFriends),
			errors.Is(err, service.ErrRequestExists):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "发送好友请求失败")
		}
		return
	}
	response.SuccessWithMessage(c, "好友请求已发送", gin.H{"request_id": request.ID})
}

// RespondRequest 处理好友请求
func (h *FriendHandler) RespondRequest(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || requestID == 0 {
		response.BadRequest(c, "无效的请求ID")
		return
	}
	type req struct {
		Accept *bool `json:"accept" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.service.RespondRequest(userID, uint(requestID), *r.Accept)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotReceiver):
			response.Forbidden(c, err.Error())
		case errors.Is(err, service.ErrRequestResolved):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "处理好友请求失败")
		}
		return
	}
	response.SuccessWithMessage(c, "好友请求已处理", gin.H{"status": request.Status})
}

// ListRequests 收到与发出的待处理请求
func (h *FriendHandler) ListRequests(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	received, sent, err := h.service.ListPendingRequests(userID)
	if err != nil {
		response.InternalError(c, "获取好友请求失败")
		return
	}

	receivedOut := make([]*response.FriendRequestInfo, 0, len(received))
	for _, req := range received {
		sender, _ := h.userSvc.GetProfile(req.SenderID)
		receivedOut = append(receivedOut, response.FilterFriendRequestInfo(req, sender, nil))
	}
	sentOut := make([]*response.FriendRequestInfo, 0, len(sent))
	for _, req := range sent {
		receiver, _ := h.userSvc.GetProfile(req.ReceiverID)
		sentOut = append(sentOut, response.FilterFriendRequestInfo(req, nil, receiver))
	}

	response.Success(c, gin.H{
		"received": receivedOut,
		"sent":     sentOut,
	})
}

// RemoveFriend 删除好友
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || friendID == 0 {
		response.BadRequest(c, "无效的好友ID")
		return
	}

	if err := h.service.RemoveFriend(userID, uint(friendID)); err != nil {
		if errors.Is(err, service.ErrNotFriends) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "删除好友失败")
		return
	}
	response.SuccessWithMessage(c, "好友已删除", nil)
}

// SearchUsers 搜索用户
func (h *FriendHandler) SearchUsers(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	query := c.Query("q")

	results, err := h.service.Search(userID, query)
	if err != nil {
		if errors.Is(err, service.ErrQueryTooShort) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "搜索用户失败")
		return
	}

	out := make([]*response.SearchUserInfo, 0, len(results))
	for _, r := range results {
		out = append(out, response.FilterSearchUserInfo(r.User, r.IsFriend, r.HasPendingRequest, r.FriendCount, r.Pet))
	}
	response.Success(c, out)
}
