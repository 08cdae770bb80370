package handler

import (
	"pet-game/internal/game"
	"pet-game/internal/service"
	"pet-game/pkg/jwt"
	"pet-game/pkg/response"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	service *service.AchievementService
}

func NewAchievementHandler(s *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: s}
}

// List 成就总览：全部成就、总点数、分类进度
func (h *AchievementHandler) List(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	achievements, points, categories, err := h.service.List(userID)
	if err != nil {
		response.InternalError(c, "获取成就失败")
		return
	}
	response.Success(c, &response.AchievementListInfo{
		Achievements: achievements,
		Points:       points,
		Categories:   categories,
	})
}

// ListByCategory 按分类列出成就
func (h *AchievementHandler) ListByCategory(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	category := game.AchievementCategory(c.Param("category"))

	switch category {
	case game.CategoryCare, game.CategoryTraining, game.CategorySocial, game.CategoryExploration:
	default:
		response.BadRequest(c, "未知的成就分类")
		return
	}

	achievements, err := h.service.ListByCategory(userID, category)
	if err != nil {
		response.InternalError(c, "获取成就失败")
		return
	}
	response.Success(c, achievements)
}

// Recent 取走最近完成的成就（一次性消费）
func (h *AchievementHandler) Recent(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	recent, err := h.service.DrainRecent(userID)
	if err != nil {
		response.InternalError(c, "获取最近成就失败")
		return
	}
	if recent == nil {
		recent = []game.Achievement{}
	}
	response.Success(c, recent)
}
