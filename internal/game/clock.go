package game

import "time"

// TimeNow 可注入的时钟，测试中替换以模拟时间流逝
var TimeNow = func() time.Time { return time.Now() }
