package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"pet-game/pkg/redis"

	"github.com/gorilla/websocket"
)

// Client 代表一个WebSocket连接的用户

type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager 管理所有在线用户的WebSocket连接
// 并发安全；用户不在线时事件落入Redis离线队列

type Manager struct {
	clients map[uint]*Client
	lock    sync.RWMutex
}

var manager = &Manager{
	clients: make(map[uint]*Client),
}

// GetManager 获取全局WebSocket管理器
func GetManager() *Manager {
	return manager
}

// AddClient 添加新连接
func (m *Manager) AddClient(userID uint, client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.clients[userID] = client

	// 补发Redis中积压的离线事件
	go m.pushOfflineEvents(userID, client)
}

// RemoveClient 移除连接
func (m *Manager) RemoveClient(userID uint) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if c, ok := m.clients[userID]; ok {
		close(c.Send)
		delete(m.clients, userID)
	}
}

// SendToUser 推送原始数据给指定用户
func (m *Manager) SendToUser(userID uint, msg []byte) {
	m.lock.RLock()
	client, ok := m.clients[userID]
	m.lock.RUnlock()
	if !ok {
		return
	}
	select {
	case client.Send <- msg:
	default:
		// 发送缓冲已满，可能连接已断开
	}
}

// IsOnline 判断用户是否有活跃连接
func (m *Manager) IsOnline(userID uint) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// OnlineCount 当前连接数
func (m *Manager) OnlineCount() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.clients)
}

// pushOfflineEvents 连接建立后补发离线事件，按入队顺序下发
func (m *Manager) pushOfflineEvents(userID uint, client *Client) {
	// 多数重连没有积压，先查长度省一次全量LRANGE
	if n, err := redis.GetOfflineEventCount(userID); err != nil || n == 0 {
		return
	}
	events, err := redis.GetOfflineEvents(userID)
	if err != nil || len(events) == 0 {
		return
	}

	for _, ev := range events {
		data, err := json.Marshal(Event{
			Type:      ev.Event,
			Payload:   ev.Payload,
			Timestamp: ev.CreatedAt.Unix(),
		})
		if err != nil {
			continue
		}

		select {
		case client.Send <- data:
		case <-time.After(5 * time.Second):
			// 发送超时，停止补发，剩余事件留待下次重连
			return
		}
	}

	// 补发完成后清空队列
	_ = redis.ClearOfflineEvents(userID)
}
