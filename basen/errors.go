package basen

import "github.com/ceyewan/snowkit/xerrors"

var (
	// ErrInvalidAlphabet 字母表不合法（长度不足、含重复或多字节字符）
	ErrInvalidAlphabet = xerrors.New("basen: invalid alphabet")

	// ErrNegative 待编码值为负数
	ErrNegative = xerrors.New("basen: cannot encode negative value")

	// ErrEmptyInput 待解码字符串为空
	ErrEmptyInput = xerrors.New("basen: cannot decode empty string")

	// ErrInvalidChar 待解码字符串包含字母表之外的字符
	ErrInvalidChar = xerrors.New("basen: invalid character")

	// ErrOverflow 解码结果超出目标整数类型的表示范围
	ErrOverflow = xerrors.New("basen: decoded value overflows target type")
)
