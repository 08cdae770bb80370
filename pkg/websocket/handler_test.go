package websocket

import (
	"testing"

	"pet-game/internal/model"
)

func TestHeartbeatWritesOnline(t *testing.T) {
	// 互动回退窗口内的 playing 状态不能被心跳覆盖成 online
	if heartbeatWritesOnline(model.StatusPlaying) {
		t.Fatal("playing 状态下心跳不应回写数据库")
	}
	if !heartbeatWritesOnline(model.StatusOnline) {
		t.Fatal("online 状态下心跳应续写数据库")
	}
	if !heartbeatWritesOnline(model.StatusOffline) {
		t.Fatal("缓存缺失按 offline 处理时应回写 online")
	}
}
