package handler

import (
	"strconv"

	"pet-game/internal/service"
	"pet-game/pkg/jwt"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *service.NotificationService
}

func NewNotificationHandler(s *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// List 分页列出通知
func (h *NotificationHandler) List(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.List(userID, limit, offset)
	if err != nil {
		response.InternalError(c, "获取通知失败")
		return
	}

	out := make([]*response.NotificationInfo, 0, len(rows))
	for _, n := range rows {
		out = append(out, response.FilterNotificationInfo(n))
	}
	response.Success(c, out)
}

// UnreadCount 未读通知数
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	count, err := h.service.UnreadCount(userID)
	if err != nil {
		response.InternalError(c, "获取未读数失败")
		return
	}
	response.Success(c, gin.H{"unread": count})
}

// MarkRead 标记单条已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "无效的通知ID")
		return
	}

	if err := h.service.MarkRead(userID, uint(id)); err != nil {
		response.InternalError(c, "标记已读失败")
		return
	}
	response.SuccessWithMessage(c, "已标记为已读", nil)
}

// MarkAllRead 全部标记已读
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if err := h.service.MarkAllRead(userID); err != nil {
		response.InternalError(c, "标记已读失败")
		return
	}
	response.SuccessWithMessage(c, "全部已读", nil)
}
