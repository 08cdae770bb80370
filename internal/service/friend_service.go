package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-game/internal/game"
	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/logger"
	"pet-game/pkg/redis"
	"pet-game/pkg/websocket"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FriendService 好友关系与好友请求服务
type FriendService struct {
	friendRepo *repository.FriendRepository
	userRepo   *repository.UserRepository
	petRepo    *repository.PetRepository
	notifyRepo *repository.NotificationRepository
	achSvc     *AchievementService
	searchMin  int
	searchMax  int
}

func NewFriendService(
	friendRepo *repository.FriendRepository,
	userRepo *repository.UserRepository,
	petRepo *repository.PetRepository,
	notifyRepo *repository.NotificationRepository,
	achSvc *AchievementService,
	searchMin, searchMax int,
) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		petRepo:    petRepo,
		notifyRepo: notifyRepo,
		achSvc:     achSvc,
		searchMin:  searchMin,
		searchMax:  searchMax,
	}
}

// petOf 查询用户宠物，没有宠物返回 nil
// 好友列表和搜索只展示摘要，优先走快照缓存避免逐个回表
func (s *FriendService) petOf(userID uint) *model.Pet {
	if snap, err := redis.GetCachedPetSnapshot(userID); err == nil && snap != nil {
		return petFromSnapshot(snap)
	}
	pet, err := s.petRepo.GetByUserID(userID)
	if err != nil {
		return nil
	}
	return pet
}

// petFromSnapshot 从快照还原摘要展示所需的字段
func petFromSnapshot(snap *redis.CachedPet) *model.Pet {
	return &model.Pet{
		ID:     snap.PetID,
		UserID: snap.UserID,
		Name:   snap.Name,
		Type:   snap.Type,
		Level:  snap.Level,
	}
}

// SendRequest 发送好友请求
// 校验：不能加自己、不能重复加好友、双向只允许一个待处理请求
func (s *FriendService) SendRequest(senderID, receiverID uint, message string) (*model.FriendRequest, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}
	if _, err := s.userRepo.GetByID(receiverID); err != nil {
		return nil, ErrUserNotFound
	}

	if friends, err := s.friendRepo.AreFriends(senderID, receiverID); err != nil {
		return nil, err
	} else if friends {
		return nil, ErrAlreadyFriends
	}
	if pending, err := s.friendRepo.HasPendingRequest(senderID, receiverID); err != nil {
		return nil, err
	} else if pending {
		return nil, ErrRequestExists
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     model.RequestPending,
		Message:    message,
	}
	if err := s.friendRepo.CreateRequest(req); err != nil {
		return nil, err
	}

	sender, _ := s.userRepo.GetByID(senderID)
	senderName := ""
	if sender != nil {
		senderName = sender.Username
	}

	s.createNotification(receiverID, model.NotifyFriendRequest,
		"新的好友请求",
		fmt.Sprintf("%s 请求添加你为好友", senderName),
		map[string]interface{}{"request_id": req.ID, "sender_id": senderID},
	)
	websocket.SendEvent(receiverID, websocket.EventFriendRequest, map[string]interface{}{
		"request_id": req.ID,
		"sender_id":  senderID,
		"sender":     senderName,
		"message":    message,
	})

	logger.Info("好友请求已发送",
		zap.Uint("sender_id", senderID),
		zap.Uint("receiver_id", receiverID),
	)
	return req, nil
}

// SendRequestByUsername 按用户名发送好友请求
func (s *FriendService) SendRequestByUsername(senderID uint, username, message string) (*model.FriendRequest, error) {
	receiver, err := s.userRepo.GetByUsernameOrEmail(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.SendRequest(senderID, receiver.ID, message)
}

// RespondRequest 处理好友请求
// 只有接收者可以处理；已处理的请求不可再变更
// 接受时在同一事务内更新请求并双向建立好友关系
func (s *FriendService) RespondRequest(userID, requestID uint, accept bool) (*model.FriendRequest, error) {
	req, err := s.friendRepo.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.ReceiverID != userID {
		return nil, ErrNotReceiver
	}
	if req.Status != model.RequestPending {
		return nil, ErrRequestResolved
	}

	receiver, _ := s.userRepo.GetByID(userID)
	receiverName := ""
	if receiver != nil {
		receiverName = receiver.Username
	}

	if accept {
		if err := s.friendRepo.AcceptRequest(req); err != nil {
			return nil, err
		}
		req.Status = model.RequestAccepted

		// 双方都推进社交成就
		if _, err := s.achSvc.AddProgress(req.SenderID, game.ProgressFriendCount, 1); err != nil {
			logger.Warn("社交成就进度更新失败", zap.Uint("user_id", req.SenderID), zap.Error(err))
		}
		if _, err := s.achSvc.AddProgress(req.ReceiverID, game.ProgressFriendCount, 1); err != nil {
			logger.Warn("社交成就进度更新失败", zap.Uint("user_id", req.ReceiverID), zap.Error(err))
		}

		s.createNotification(req.SenderID, model.NotifyFriendAccepted,
			"好友请求已通过",
			fmt.Sprintf("%s 接受了你的好友请求", receiverName),
			map[string]interface{}{"friend_id": userID},
		)
	} else {
		if err := s.friendRepo.RejectRequest(requestID); err != nil {
			return nil, err
		}
		req.Status = model.RequestRejected
	}

	websocket.SendEvent(req.SenderID, websocket.EventFriendRequestResponse, map[string]interface{}{
		"request_id": req.ID,
		"receiver":   receiverName,
		"accepted":   accept,
	})

	logger.Info("好友请求已处理",
		zap.Uint("request_id", requestID),
		zap.Bool("accepted", accept),
	)
	return req, nil
}

// ListFriends 好友列表，附带实时在线状态与宠物摘要
func (s *FriendService) ListFriends(userID uint) ([]*model.User, map[uint]string, map[uint]*model.Pet, error) {
	ids, err := s.friendRepo.ListFriendIDs(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, nil, nil, err
	}

	status := make(map[uint]string, len(users))
	pets := make(map[uint]*model.Pet, len(users))
	for _, u := range users {
		status[u.ID] = redis.GetUserStatus(u.ID)
		if pet := s.petOf(u.ID); pet != nil {
			pets[u.ID] = pet
		}
	}
	return users, status, pets, nil
}

// ListPendingRequests 收到与发出的待处理请求
func (s *FriendService) ListPendingRequests(userID uint) (received, sent []*model.FriendRequest, err error) {
	received, err = s.friendRepo.ListPendingReceived(userID)
	if err != nil {
		return nil, nil, err
	}
	sent, err = s.friendRepo.ListPendingSent(userID)
	if err != nil {
		return nil, nil, err
	}
	return received, sent, nil
}

// RemoveFriend 删除好友（双向）
func (s *FriendService) RemoveFriend(userID, friendID uint) error {
	friends, err := s.friendRepo.AreFriends(userID, friendID)
	if err != nil {
		return err
	}
	if !friends {
		return ErrNotFriends
	}
	return s.friendRepo.RemoveFriendship(userID, friendID)
}

// SearchResult 搜索结果条目
type SearchResult struct {
	User              *model.User
	IsFriend          bool
	HasPendingRequest bool
	FriendCount       int64
	Pet               *model.Pet
}

// Search 按用户名/昵称搜索用户
// 关系标注（is_friend/has_pending_request）在响应生成时实时计算，
// 不依赖搜索发起时的快照
func (s *FriendService) Search(userID uint, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < s.searchMin {
		return nil, ErrQueryTooShort
	}

	users, err := s.userRepo.Search(query, userID, s.searchMax)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(users))
	for _, u := range users {
		isFriend, err := s.friendRepo.AreFriends(userID, u.ID)
		if err != nil {
			return nil, err
		}
		hasPending := false
		if !isFriend {
			hasPending, err = s.friendRepo.HasPendingRequest(userID, u.ID)
			if err != nil {
				return nil, err
			}
		}
		friendCount, err := s.friendRepo.CountFriends(u.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{
			User:              u,
			IsFriend:          isFriend,
			HasPendingRequest: hasPending,
			FriendCount:       friendCount,
			Pet:               s.petOf(u.ID),
		})
	}
	return results, nil
}

// createNotification 写通知并累加未读计数
func (s *FriendService) createNotification(userID uint, notifyType, title, content string, payload map[string]interface{}) {
	data, _ := json.Marshal(payload)
	if err := s.notifyRepo.Create(&model.Notification{
		UserID:  userID,
		Type:    notifyType,
		Title:   title,
		Content: content,
		Payload: string(data),
	}); err != nil {
		logger.Error("写通知失败", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	_ = redis.IncrementNotifyCount(userID)
}
