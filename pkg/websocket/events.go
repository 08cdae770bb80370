package websocket

import (
	"encoding/json"
	"time"

	"pet-game/pkg/redis"
)

// 推送事件类型
const (
	EventFriendOnlineStatus    = "friend_online_status"
	EventFriendRequest         = "friend_request"
	EventFriendRequestResponse = "friend_request_response"
	EventGameInvite            = "game_invite"
	EventInviteResponse        = "game_invite_response"
	EventAchievementUnlocked   = "achievement_unlocked"
	EventPetStats              = "pet_stats"
	EventNotification          = "notification"
)

// Event 推送事件信封
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// SendEvent 向指定用户推送事件
// 用户不在线时进入Redis离线事件队列，重连后补发
func SendEvent(userID uint, eventType string, payload interface{}) {
	event := Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	m := GetManager()
	if m.IsOnline(userID) {
		m.SendToUser(userID, data)
		return
	}

	_ = redis.AddOfflineEvent(userID, &redis.OfflineEvent{
		Event:     eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
}

// BroadcastEvent 向一组用户推送同一事件
func BroadcastEvent(userIDs []uint, eventType string, payload interface{}) {
	for _, id := range userIDs {
		SendEvent(id, eventType, payload)
	}
}
