package handler

import (
	"errors"

	"pet-game/internal/game"
	"pet-game/internal/service"
	"pet-game/pkg/jwt"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	service *service.PetService
}

func NewPetHandler(s *service.PetService) *PetHandler {
	return &PetHandler{service: s}
}

// GetPet 获取宠物状态（衰减结算后）
func (h *PetHandler) GetPet(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	pet, state, cooldowns, err := h.service.GetPet(userID)
	if err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "获取宠物状态失败")
		return
	}
	response.Success(c, response.FilterPetInfo(pet, state, cooldowns))
}

// CreatePet 创建宠物（每个用户至多一只）
func (h *PetHandler) CreatePet(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	type req struct {
		Name string `json:"name" binding:"required"`
		Type string `json:"type"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if r.Type == "" {
		r.Type = "cat"
	}

	pet, state, err := h.service.CreatePet(userID, r.Name, r.Type)
	if err != nil {
		if errors.Is(err, service.ErrPetExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "创建宠物失败")
		return
	}
	response.SuccessWithMessage(c, "宠物已创建", response.FilterPetInfo(pet, state, map[string]int{}))
}

// Interact 活动互动
func (h *PetHandler) Interact(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	username := jwt.GetUsername(c)
	type req struct {
		Activity string `json:"activity_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, unlocked, state, err := h.service.Interact(userID, username, r.Activity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPetNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, game.ErrUnknownActivity):
			response.BadRequest(c, "未知的活动")
		case errors.Is(err, game.ErrInsufficientEnergy):
			response.BadRequest(c, "宠物精力不足")
		case errors.Is(err, game.ErrOnCooldown):
			response.TooManyRequests(c, "活动冷却中")
		default:
			response.InternalError(c, "互动失败")
		}
		return
	}

	response.Success(c, &response.InteractionInfo{
		Activity:        result.Activity.ID,
		Stats:           state.Stats,
		Mood:            state.Mood(),
		ExperienceGain:  result.Experience,
		CoinsGain:       result.Coins,
		LeveledUp:       result.LeveledUp,
		Level:           result.Level,
		CooldownSeconds: int(result.CooldownUntil.Sub(game.TimeNow()).Seconds()),
		NewAchievements: unlocked,
	})
}

// Care 照料动作：feed/play/sleep/clean/pet
func (h *PetHandler) Care(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	action := c.Param("action")

	state, unlocked, err := h.service.Care(userID, action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPetNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrInvalidAction):
			response.BadRequest(c, err.Error())
		case errors.Is(err, game.ErrInsufficientEnergy):
			response.BadRequest(c, "宠物精力不足")
		default:
			response.InternalError(c, "照料失败")
		}
		return
	}

	response.Success(c, gin.H{
		"stats":            state.Stats,
		"mood":             state.Mood(),
		"level":            state.Level,
		"experience":       state.Experience,
		"new_achievements": unlocked,
	})
}

// ListActivities 活动目录，附带当前宠物的剩余冷却
func (h *PetHandler) ListActivities(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)

	cooldowns := map[string]int{}
	if _, _, cds, err := h.service.GetPet(userID); err == nil {
		cooldowns = cds
	}

	var out []*response.ActivityInfo
	for _, act := range game.Activities() {
		out = append(out, response.FilterActivityInfo(act, cooldowns[act.ID]))
	}
	response.Success(c, out)
}
