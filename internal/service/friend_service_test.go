package service

import (
	"testing"

	"pet-game/pkg/redis"
)

func TestPetFromSnapshot(t *testing.T) {
	snap := &redis.CachedPet{
		PetID:  7,
		UserID: 3,
		Name:   "旺财",
		Type:   "dog",
		Level:  5,
	}

	pet := petFromSnapshot(snap)
	if pet.ID != 7 || pet.UserID != 3 {
		t.Fatalf("快照映射ID错误: pet_id=%d user_id=%d", pet.ID, pet.UserID)
	}
	if pet.Name != "旺财" || pet.Type != "dog" || pet.Level != 5 {
		t.Fatalf("快照映射摘要字段错误: name=%s type=%s level=%d", pet.Name, pet.Type, pet.Level)
	}
}
