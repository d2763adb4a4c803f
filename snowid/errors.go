package snowid

import "github.com/ceyewan/snowkit/xerrors"

var (
	// ErrInvalidInput 无效的构造参数（配置错误，不可重试）
	ErrInvalidInput = xerrors.New("snowid: invalid input")

	// ErrConfigNil 配置为空
	ErrConfigNil = xerrors.New("snowid: config is nil")

	// ErrComponentBound 组件已绑定到其他生成器
	ErrComponentBound = xerrors.New("snowid: component already bound to another generator")

	// ErrOverflow 组件产出的值超出其分配的位宽（运行期条件，非配置错误）
	ErrOverflow = xerrors.New("snowid: value overflows component bit length")

	// ErrClockStalled 时钟在重试耗尽后仍未前进，视为时钟源异常
	ErrClockStalled = xerrors.New("snowid: clock did not advance after retries")
)
