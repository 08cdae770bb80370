package websocket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-game/config"
	"pet-game/internal/model"
	"pet-game/internal/repository"
	dbPkg "pet-game/pkg/db"
	"pet-game/pkg/jwt"
	"pet-game/pkg/redis"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许跨域
	},
}

// WsHandler Gin路由处理函数
// 建立连接后：置用户在线、补发离线事件、向好友广播上线状态
func WsHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Sec-WebSocket-Protocol"), "Bearer ")
	}
	if token == "" {
		response.Unauthorized(c, "缺少token")
		return
	}

	jwtCfg := c.MustGet("jwt_config").(config.JWTConfig) // 在main.go注入
	jwtSvc := jwt.NewJWTService(jwtCfg)
	claims, err := jwtSvc.ValidateToken(token)
	if err != nil {
		response.Unauthorized(c, "token无效或已过期")
		return
	}
	userID64, _ := strconv.ParseUint(claims.Subject, 10, 32)
	if userID64 == 0 {
		response.Unauthorized(c, "token无效")
		return
	}
	userID := uint(userID64)

	// 回显子协议，避免客户端提示 "Server sent no subprotocol"
	respHeader := http.Header{}
	if protocol := c.GetHeader("Sec-WebSocket-Protocol"); protocol != "" {
		respHeader.Set("Sec-WebSocket-Protocol", protocol)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, respHeader)
	if err != nil {
		return
	}

	client := &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
	GetManager().AddClient(userID, client)

	username := ""
	if claims.Data != nil {
		if u, ok := claims.Data["username"].(string); ok {
			username = u
		}
	}

	// 连接建立：数据库与Redis双写在线状态，并通知好友
	setPresence(userID, username, model.StatusOnline)

	defer func() {
		GetManager().RemoveClient(userID)
		setPresence(userID, username, model.StatusOffline)
	}()

	wsCfg := c.MustGet("ws_config").(config.WebSocketConfig)

	// 写协程 + 定时ping心跳
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(wsCfg.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case msg, ok := <-client.Send:
				if !ok {
					return
				}
				_ = conn.WriteMessage(websocket.TextMessage, msg)
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
					close(done)
					return
				}
			}
		}
	}()

	// 读协程（接收心跳/客户端消息）。超时未收到任何读事件则断开
	_ = conn.SetReadDeadline(time.Now().Add(wsCfg.ReadTimeout))
	conn.SetPongHandler(func(appData string) error {
		return conn.SetReadDeadline(time.Now().Add(wsCfg.ReadTimeout))
	})
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsCfg.ReadTimeout))
		var msg map[string]interface{}
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		if t, ok := msg["type"].(string); ok && t == "heartbeat" {
			// 刷新在线状态TTL
			_ = redis.RefreshUserPresence(userID)
			if db := dbPkg.GetDB(); db != nil && heartbeatWritesOnline(redis.GetUserStatus(userID)) {
				_ = repository.NewUserRepository().UpdateStatus(userID, model.StatusOnline)
			}
		}
	}
	select {
	case <-done:
	default:
		close(done)
	}
}

// heartbeatWritesOnline 心跳是否把数据库状态写回 online
// 互动产生的 playing 状态由回退定时器收尾，心跳不抢写
func heartbeatWritesOnline(current string) bool {
	return current != model.StatusPlaying
}

// setPresence 双写在线状态并向好友广播状态变更
func setPresence(userID uint, username, status string) {
	if db := dbPkg.GetDB(); db != nil {
		_ = repository.NewUserRepository().UpdateStatus(userID, status)
	}
	_, _ = redis.SetUserPresence(userID, username, status)

	NotifyFriendsStatus(userID, username, status)
}

// NotifyFriendsStatus 向该用户的全部好友推送其在线状态变更
func NotifyFriendsStatus(userID uint, username, status string) {
	db := dbPkg.GetDB()
	if db == nil {
		return
	}
	friendIDs, err := repository.NewFriendRepository(db).ListFriendIDs(userID)
	if err != nil {
		return
	}
	payload := map[string]interface{}{
		"user_id":  userID,
		"username": username,
		"status":   status,
	}
	online := make([]uint, 0, len(friendIDs))
	for _, fid := range friendIDs {
		// 好友离线时状态变更没有补发价值，只推在线的
		// 以Redis在线态为准，覆盖多实例部署时不在本地连接表的好友
		if ok, err := redis.IsUserOnline(fid); err == nil && ok {
			online = append(online, fid)
		} else if GetManager().IsOnline(fid) {
			online = append(online, fid)
		}
	}
	BroadcastEvent(online, EventFriendOnlineStatus, payload)
}
