package game

// Mood 宠物心情，派生值，不存储，每次读取时重新计算
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodTired   Mood = "tired"
	MoodHungry  Mood = "hungry"
	MoodSick    Mood = "sick"
)

// 心情判定阈值
const (
	hungryThreshold  = 20.0
	tiredThreshold   = 20.0
	sickThreshold    = 50.0
	happyAvgMinimum  = 80.0
	neutralAvgMinimum = 50.0
)

// MoodOf 根据属性阈值计算心情
// 优先级：饥饿 > 疲惫 > 生病 > 均值档位
func MoodOf(s Stats) Mood {
	if s.Hunger < hungryThreshold {
		return MoodHungry
	}
	if s.Energy < tiredThreshold {
		return MoodTired
	}
	if s.Health < sickThreshold {
		return MoodSick
	}

	avg := s.Average()
	if avg >= happyAvgMinimum {
		return MoodHappy
	}
	if avg >= neutralAvgMinimum {
		return MoodNeutral
	}
	return MoodSad
}
