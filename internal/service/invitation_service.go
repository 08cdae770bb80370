package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/logger"
	"pet-game/pkg/redis"
	"pet-game/pkg/websocket"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvitationService 游戏邀请服务
// 过期不靠后台任务：读取和响应时按 ExpiresAt 惰性结算
type InvitationService struct {
	inviteRepo *repository.InvitationRepository
	friendRepo *repository.FriendRepository
	userRepo   *repository.UserRepository
	notifyRepo *repository.NotificationRepository
	ttl        time.Duration
}

func NewInvitationService(
	inviteRepo *repository.InvitationRepository,
	friendRepo *repository.FriendRepository,
	userRepo *repository.UserRepository,
	notifyRepo *repository.NotificationRepository,
	ttl time.Duration,
) *InvitationService {
	return &InvitationService{
		inviteRepo: inviteRepo,
		friendRepo: friendRepo,
		userRepo:   userRepo,
		notifyRepo: notifyRepo,
		ttl:        ttl,
	}
}

// Send 发送游戏邀请，只能邀请好友
func (s *InvitationService) Send(senderID, receiverID uint, inviteType string) (*model.Invitation, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}
	switch inviteType {
	case model.InviteWalk, model.InvitePlay, model.InviteTraining:
	default:
		return nil, ErrInvalidAction
	}

	friends, err := s.friendRepo.AreFriends(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	inv := &model.Invitation{
		PublicID:   uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Type:       inviteType,
		Status:     model.InvitePending,
		ExpiresAt:  time.Now().Add(s.ttl),
	}
	if err := s.inviteRepo.Create(inv); err != nil {
		return nil, err
	}

	sender, _ := s.userRepo.GetByID(senderID)
	senderName := ""
	if sender != nil {
		senderName = sender.Username
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"invitation_id": inv.PublicID,
		"sender_id":     senderID,
		"type":          inviteType,
	})
	if err := s.notifyRepo.Create(&model.Notification{
		UserID:  receiverID,
		Type:    model.NotifyGameInvite,
		Title:   "游戏邀请",
		Content: fmt.Sprintf("%s 邀请你一起%s", senderName, inviteTypeLabel(inviteType)),
		Payload: string(payload),
	}); err != nil {
		logger.Error("写邀请通知失败", zap.Uint("user_id", receiverID), zap.Error(err))
	}
	_ = redis.IncrementNotifyCount(receiverID)

	websocket.SendEvent(receiverID, websocket.EventGameInvite, map[string]interface{}{
		"invitation_id": inv.PublicID,
		"sender_id":     senderID,
		"sender":        senderName,
		"type":          inviteType,
		"expires_at":    inv.ExpiresAt.Unix(),
	})

	logger.Info("游戏邀请已发送",
		zap.Uint("sender_id", senderID),
		zap.Uint("receiver_id", receiverID),
		zap.String("type", inviteType),
	)
	return inv, nil
}

// Respond 响应邀请
// 只有接收者可以响应；过期先于响应结算；已结算的邀请不可再变更
func (s *InvitationService) Respond(userID uint, publicID string, accept bool) (*model.Invitation, error) {
	inv, err := s.inviteRepo.GetByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	if inv.ReceiverID != userID {
		return nil, ErrNotReceiver
	}
	if inv.Status != model.InvitePending {
		return nil, ErrInviteResolved
	}
	if time.Now().After(inv.ExpiresAt) {
		if _, err := s.inviteRepo.UpdateStatus(inv.ID, model.InviteExpired); err != nil {
			return nil, err
		}
		return nil, ErrInviteExpired
	}

	status := model.InviteAccepted
	if !accept {
		status = model.InviteDeclined
	}
	affected, err := s.inviteRepo.UpdateStatus(inv.ID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// 状态已被并发结算
		return nil, ErrInviteResolved
	}
	inv.Status = status

	receiver, _ := s.userRepo.GetByID(userID)
	receiverName := ""
	if receiver != nil {
		receiverName = receiver.Username
	}
	websocket.SendEvent(inv.SenderID, websocket.EventInviteResponse, map[string]interface{}{
		"invitation_id": inv.PublicID,
		"receiver":      receiverName,
		"accepted":      accept,
	})

	logger.Info("游戏邀请已响应",
		zap.String("invitation_id", publicID),
		zap.Bool("accepted", accept),
	)
	return inv, nil
}

// List 用户相关邀请，读取前先惰性结算过期
func (s *InvitationService) List(userID uint, limit int) ([]*model.Invitation, error) {
	if err := s.inviteRepo.ExpireOverdue(userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.inviteRepo.ListForUser(userID, limit)
}

// ListPending 收到的待处理邀请
func (s *InvitationService) ListPending(userID uint) ([]*model.Invitation, error) {
	if err := s.inviteRepo.ExpireOverdue(userID); err != nil {
		return nil, err
	}
	return s.inviteRepo.ListPendingReceived(userID)
}

func inviteTypeLabel(t string) string {
	switch t {
	case model.InviteWalk:
		return "散步"
	case model.InvitePlay:
		return "玩耍"
	case model.InviteTraining:
		return "训练"
	default:
		return "游戏"
	}
}
