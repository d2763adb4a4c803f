package snowid

import "time"

// Clock 时钟源接口，返回当前时间点
//
// 默认实现为系统时钟；测试或特殊部署环境可注入自定义实现。
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock 系统时钟，时间戳组件的默认时钟源。
var SystemClock Clock = systemClock{}
