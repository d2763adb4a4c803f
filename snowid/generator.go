package snowid

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ceyewan/snowkit/clog"
	"github.com/ceyewan/snowkit/metrics"
	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// slot 组件及其按插入顺序导出的位移量
type slot[T numeric.Integer] struct {
	comp  Component[T]
	shift uint
}

// Generator 标识符生成器
//
// 构造后不可变。位移按插入顺序一次性导出：第 i 个组件的位移是其后
// 所有组件位宽之和，即第一个组件占最高位。调用顺序是独立的第二个
// 数组，仅当存在非默认执行顺序键时按键稳定排序。
//
// Next 在单一互斥段内依次调用全部组件，保证两次生成调用的组件链
// 不会交错执行，因此序列组件可以用普通的非同步计数器实现。
type Generator[T numeric.Integer] struct {
	mu    sync.Mutex
	slots []slot[T]  // 插入顺序，决定位安置
	exec  []*slot[T] // 调用顺序
	ctx   *Context[T]

	logger    clog.Logger
	generated metrics.Counter
	errors    metrics.Counter
	latency   metrics.Histogram
}

// New 创建生成器
//
// 校验依次为：集合非 nil、非空、无 nil 条目、无重复组件、每个组件
// 可被本生成器绑定（已属于其他生成器则失败）、序列引用合法、位宽
// 总和不超过 T 的可用位数。除溢出外这些都是配置错误，不会在运行期
// 复现。
func New[T numeric.Integer](components []Component[T], opts ...Option) (*Generator[T], error) {
	if components == nil {
		return nil, xerrors.WithCode(ErrInvalidInput, "components_nil")
	}
	if len(components) == 0 {
		return nil, xerrors.WithCode(ErrInvalidInput, "components_empty")
	}
	for i, c := range components {
		if c == nil {
			return nil, xerrors.Wrapf(ErrInvalidInput, "component %d is nil", i)
		}
	}
	for i, c := range components {
		for j := i + 1; j < len(components); j++ {
			if components[j] == c {
				return nil, xerrors.Wrapf(ErrInvalidInput, "component %d duplicated at %d", i, j)
			}
		}
	}

	// 应用选项
	opt := Options{}
	for _, o := range opts {
		o(&opt)
	}
	if opt.Logger == nil {
		opt.Logger = clog.Discard()
	}
	logger := opt.Logger.With(clog.String("component", "snowid"))

	g := &Generator[T]{logger: logger}

	for _, c := range components {
		if err := c.meta().claim(g); err != nil {
			return nil, err
		}
	}

	if err := validateSequences(components); err != nil {
		return nil, err
	}

	var total uint
	for _, c := range components {
		total += uint(c.Bits())
	}
	if usable := numeric.UsableBits[T](); total > usable {
		return nil, xerrors.Wrapf(ErrInvalidInput,
			"total bit length %d exceeds usable width %d", total, usable)
	}

	// 位移按插入顺序导出：第一个组件占最高位
	g.slots = make([]slot[T], len(components))
	shift := total
	for i, c := range components {
		shift -= uint(c.Bits())
		g.slots[i] = slot[T]{comp: c, shift: shift}
	}

	// 调用顺序：存在非默认执行顺序键时按键稳定排序，否则沿用插入顺序
	g.exec = make([]*slot[T], len(g.slots))
	needSort := false
	for i := range g.slots {
		g.exec[i] = &g.slots[i]
		if g.slots[i].comp.ExecutionOrder() != 0 {
			needSort = true
		}
	}
	if needSort {
		slices.SortStableFunc(g.exec, func(a, b *slot[T]) int {
			return cmp.Compare(a.comp.ExecutionOrder(), b.comp.ExecutionOrder())
		})
	}

	g.ctx = &Context[T]{components: components}

	if opt.Meter != nil {
		g.generated, _ = opt.Meter.Counter(MetricGenerated, "total identifiers generated")
		g.errors, _ = opt.Meter.Counter(MetricErrors, "total failed generation calls")
		g.latency, _ = opt.Meter.Histogram(MetricLatency, "generation call duration", metrics.WithUnit("s"))
	}

	logger.Info("generator created",
		clog.Int("components", len(components)),
		clog.Int("total_bits", int(total)),
		clog.Bool("custom_execution_order", needSort),
	)

	return g, nil
}

// validateSequences 校验序列组件的引用（内部使用）
func validateSequences[T numeric.Integer](components []Component[T]) error {
	for i, c := range components {
		seq, ok := c.(*Sequence[T])
		if !ok {
			continue
		}
		if seq.ref >= len(components) {
			return xerrors.Wrapf(ErrInvalidInput,
				"sequence %d references index %d out of range", i, seq.ref)
		}
		if seq.ref == i {
			return xerrors.Wrapf(ErrInvalidInput,
				"sequence %d references itself", i)
		}
		if _, blocking := components[seq.ref].(*BlockingTimestamp[T]); blocking {
			return xerrors.Wrapf(ErrInvalidInput,
				"sequence %d references blocking timestamp %d", i, seq.ref)
		}
	}
	return nil
}

// Next 生成一个标识符
//
// 无参数；副作用是更新每个组件的 lastValue。整个组件链在互斥段内
// 执行完毕后才轮到下一次调用。
func (g *Generator[T]) Next() (T, error) {
	start := time.Now()

	g.mu.Lock()
	var id T
	for _, s := range g.exec {
		v, err := getValue(s.comp, g.ctx)
		if err != nil {
			g.mu.Unlock()
			g.logger.Warn("generation failed", clog.Error(err))
			if g.errors != nil {
				g.errors.Inc(context.Background(), metrics.L("code", xerrors.GetCode(err)))
			}
			return 0, err
		}
		id |= v << s.shift
	}
	g.mu.Unlock()

	if g.generated != nil {
		g.generated.Inc(context.Background())
	}
	if g.latency != nil {
		g.latency.Record(context.Background(), time.Since(start).Seconds())
	}
	return id, nil
}

// Components 返回组件数量。
func (g *Generator[T]) Components() int {
	return len(g.slots)
}

// Shift 返回第 i 个组件（按插入顺序）的位移量。
func (g *Generator[T]) Shift(i int) uint {
	return g.slots[i].shift
}
