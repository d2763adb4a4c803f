package snowid

import (
	"time"

	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Timestamp 时间戳组件
//
// 产出 (now − epoch) / divisor，单位毫秒，向零截断。divisor 控制精度：
// 1 为毫秒，1000 为秒。序列组件通常引用本组件，除非显式指定执行顺序，
// 两者都应让时间戳先于序列执行。
type Timestamp[T numeric.Integer] struct {
	core[T]
	epoch   time.Time
	divisor int64
}

// NewTimestamp 创建时间戳组件
//
// 参数:
//   - bits: 位宽 [1, 可用位数]
//   - epoch: 纪元时间点，不得晚于当前时间
//   - divisor: 毫秒刻度除数，>= 1
//   - opts: 可选参数 (ExecutionOrder, ComponentClock)
func NewTimestamp[T numeric.Integer](bits uint8, epoch time.Time, divisor int64, opts ...ComponentOption) (*Timestamp[T], error) {
	c, err := newCore[T](bits, opts)
	if err != nil {
		return nil, err
	}
	if divisor < 1 {
		return nil, xerrors.Wrapf(ErrInvalidInput, "divisor %d must be >= 1", divisor)
	}
	if epoch.After(c.clock.Now()) {
		return nil, xerrors.Wrapf(ErrInvalidInput, "epoch %v is in the future", epoch)
	}
	return &Timestamp[T]{core: c, epoch: epoch, divisor: divisor}, nil
}

// tick 返回当前刻度值（内部使用）
func (t *Timestamp[T]) tick() uint64 {
	return uint64(t.clock.Now().Sub(t.epoch).Milliseconds() / t.divisor)
}

func (t *Timestamp[T]) compute(_ *Context[T]) (uint64, error) {
	return t.tick(), nil
}

// blockingRetries 阻塞时间戳在判定时钟异常前的重试次数
const blockingRetries = 3

// BlockingTimestamp 阻塞式时间戳组件
//
// 与上一次产出相同时，睡眠一个精度单位后重试，至多 blockingRetries 次；
// 仍未前进则返回 ErrClockStalled。用序列位换取单调不碰撞的时间戳，
// 代价是负载高时的调用延迟。睡眠只阻塞调用线程，没有取消钩子，需要
// 取消语义的调用方应在上层用超时竞争。
type BlockingTimestamp[T numeric.Integer] struct {
	Timestamp[T]
	prev uint64
	seen bool
}

// NewBlockingTimestamp 创建阻塞式时间戳组件，参数与 NewTimestamp 一致。
func NewBlockingTimestamp[T numeric.Integer](bits uint8, epoch time.Time, divisor int64, opts ...ComponentOption) (*BlockingTimestamp[T], error) {
	ts, err := NewTimestamp[T](bits, epoch, divisor, opts...)
	if err != nil {
		return nil, err
	}
	return &BlockingTimestamp[T]{Timestamp: *ts}, nil
}

func (b *BlockingTimestamp[T]) compute(_ *Context[T]) (uint64, error) {
	v := b.tick()
	if !b.seen || v != b.prev {
		b.prev, b.seen = v, true
		return v, nil
	}

	unit := time.Duration(b.divisor) * time.Millisecond
	for i := 0; i < blockingRetries; i++ {
		time.Sleep(unit)
		v = b.tick()
		if v != b.prev {
			b.prev = v
			return v, nil
		}
	}
	return 0, xerrors.Wrapf(ErrClockStalled, "tick %d unchanged after %d retries", v, blockingRetries)
}
