package handler

import (
	"errors"
	"strconv"

	"pet-game/internal/service"
	"pet-game/pkg/jwt"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	service *service.InvitationService
	userSvc *service.UserService
}

func NewInvitationHandler(s *service.InvitationService, userSvc *service.UserService) *InvitationHandler {
	return &InvitationHandler{service: s, userSvc: userSvc}
}

// Send 发送游戏邀请（仅限好友）
func (h *InvitationHandler) Send(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	type req struct {
		ReceiverID uint   `json:"receiver_id" binding:"required"`
		Type       string `json:"type" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inv, err := h.service.Send(userID, r.ReceiverID, r.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFriends),
			errors.Is(err, service.ErrSelfRequest),
			errors.Is(err, service.ErrInvalidAction):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "发送邀请失败")
		}
		return
	}

	sender, _ := h.userSvc.GetProfile(userID)
	response.SuccessWithMessage(c, "邀请已发送", response.FilterInvitationInfo(inv, sender, nil))
}

// Respond 响应邀请
func (h *InvitationHandler) Respond(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	publicID := c.Param("id")
	type req struct {
		Accept *bool `json:"accept" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inv, err := h.service.Respond(userID, publicID, *r.Accept)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotReceiver):
			response.Forbidden(c, err.Error())
		case errors.Is(err, service.ErrInviteExpired),
			errors.Is(err, service.ErrInviteResolved):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "处理邀请失败")
		}
		return
	}
	response.SuccessWithMessage(c, "邀请已处理", gin.H{"status": inv.Status})
}

// List 用户相关邀请
func (h *InvitationHandler) List(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	invs, err := h.service.List(userID, limit)
	if err != nil {
		response.InternalError(c, "获取邀请列表失败")
		return
	}

	out := make([]*response.InvitationInfo, 0, len(invs))
	for _, inv := range invs {
		sender, _ := h.userSvc.GetProfile(inv.SenderID)
		receiver, _ := h.userSvc.GetProfile(inv.ReceiverID)
		out = append(out, response.FilterInvitationInfo(inv, sender, receiver))
	}
	response.Success(c, out)
}

// ListPending 收到的待处理邀请
func (h *InvitationHandler) ListPending(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	invs, err := h.service.ListPending(userID)
	if err != nil {
		response.InternalError(c, "获取待处理邀请失败")
		return
	}

	out := make([]*response.InvitationInfo, 0, len(invs))
	for _, inv := range invs {
		sender, _ := h.userSvc.GetProfile(inv.SenderID)
		out = append(out, response.FilterInvitationInfo(inv, sender, nil))
	}
	response.Success(c, out)
}
