package service

import "errors"

// 业务错误，handler 层用 errors.Is 映射为响应码
var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrInvalidPassword = errors.New("用户名或密码错误")

	ErrPetNotFound   = errors.New("宠物不存在")
	ErrPetExists     = errors.New("已经拥有宠物")
	ErrInvalidAction = errors.New("未知的照料动作")

	ErrSelfRequest     = errors.New("不能添加自己为好友")
	ErrAlreadyFriends  = errors.New("已经是好友")
	ErrRequestExists   = errors.New("已有待处理的好友请求")
	ErrRequestNotFound = errors.New("好友请求不存在")
	ErrNotReceiver     = errors.New("只有接收者才能处理该请求")
	ErrRequestResolved = errors.New("好友请求已被处理")
	ErrNotFriends      = errors.New("对方不是你的好友")
	ErrQueryTooShort   = errors.New("搜索关键字过短")

	ErrInviteNotFound = errors.New("邀请不存在")
	ErrInviteExpired  = errors.New("邀请已过期")
	ErrInviteResolved = errors.New("邀请已被处理")
)
