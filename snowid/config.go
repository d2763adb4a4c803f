package snowid

import (
	"time"

	"github.com/ceyewan/snowkit/xerrors"
)

// 声明式字段类型
const (
	KindTimestamp         = "timestamp"
	KindBlockingTimestamp = "blocking_timestamp"
	KindConstant          = "constant"
	KindHashConstant      = "hash_constant"
	KindSequence          = "sequence"
)

// FieldConfig 单个位字段的声明式配置
type FieldConfig struct {
	// Kind 字段类型，见 Kind* 常量
	Kind string `mapstructure:"kind" yaml:"kind" json:"kind"`

	// Bits 字段位宽
	Bits uint8 `mapstructure:"bits" yaml:"bits" json:"bits"`

	// EpochMs 时间戳起点（Unix 毫秒），仅时间戳类字段使用
	EpochMs int64 `mapstructure:"epoch_ms" yaml:"epoch_ms" json:"epoch_ms"`

	// Divisor 毫秒分频系数，仅时间戳类字段使用，默认 1
	Divisor int64 `mapstructure:"divisor" yaml:"divisor" json:"divisor"`

	// Value 固定值，仅 constant 字段使用
	Value int64 `mapstructure:"value" yaml:"value" json:"value"`

	// Key 散列输入，仅 hash_constant 字段使用
	Key string `mapstructure:"key" yaml:"key" json:"key"`

	// Ref 被观察字段的下标，仅 sequence 字段使用
	Ref int `mapstructure:"ref" yaml:"ref" json:"ref"`

	// Order 执行顺序键，默认 0
	Order int `mapstructure:"order" yaml:"order" json:"order"`

	// AllowTruncation 允许掩码截断
	AllowTruncation bool `mapstructure:"allow_truncation" yaml:"allow_truncation" json:"allow_truncation"`
}

// Config 生成器的声明式配置，字段按声明顺序从高位到低位安置
type Config struct {
	Fields []FieldConfig `mapstructure:"fields" yaml:"fields" json:"fields"`
}

func (c *Config) setDefaults() {
	for i := range c.Fields {
		f := &c.Fields[i]
		if (f.Kind == KindTimestamp || f.Kind == KindBlockingTimestamp) && f.Divisor == 0 {
			f.Divisor = 1
		}
	}
}

func (c *Config) validate() error {
	if len(c.Fields) == 0 {
		return xerrors.WithCode(ErrInvalidInput, "fields_empty")
	}
	for i, f := range c.Fields {
		switch f.Kind {
		case KindTimestamp, KindBlockingTimestamp, KindConstant, KindHashConstant, KindSequence:
		default:
			return xerrors.Wrapf(ErrInvalidInput, "field %d: unknown kind %q", i, f.Kind)
		}
		if f.Bits == 0 {
			return xerrors.Wrapf(ErrInvalidInput, "field %d: bits is required", i)
		}
	}
	return nil
}

// FromConfig 按声明式配置构造 int64 生成器
//
// 需要其他整型宽度或自定义组件时，直接使用 Builder。
func FromConfig(cfg *Config, opts ...Option) (*Generator[int64], error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	b := NewBuilder[int64]()
	for _, f := range cfg.Fields {
		var copts []ComponentOption
		if f.Order != 0 {
			copts = append(copts, WithExecutionOrder(f.Order))
		}
		if f.AllowTruncation {
			copts = append(copts, WithTruncation())
		}
		switch f.Kind {
		case KindTimestamp:
			b.AddTimestamp(f.Bits, time.UnixMilli(f.EpochMs), f.Divisor, copts...)
		case KindBlockingTimestamp:
			b.AddBlockingTimestamp(f.Bits, time.UnixMilli(f.EpochMs), f.Divisor, copts...)
		case KindConstant:
			b.AddConstant(f.Bits, f.Value, copts...)
		case KindHashConstant:
			b.AddHashConstant(f.Bits, f.Key, copts...)
		case KindSequence:
			b.AddSequence(f.Bits, f.Ref, copts...)
		}
	}
	return b.Build(opts...)
}
