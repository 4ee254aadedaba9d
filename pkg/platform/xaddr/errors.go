package xaddr

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidAddress 表示无效的端点字符串或地址。
	ErrInvalidAddress = errors.New("xaddr: invalid address")

	// ErrInvalidFamily 表示未定义的地址族标签。
	ErrInvalidFamily = errors.New("xaddr: invalid address family")

	// ErrZoneNotSupported 表示 IPv6 zone 为接口名而非数字 scope id。
	// 名称到 scope id 的解析需要查询操作系统接口表，属于本层之外的协作者。
	ErrZoneNotSupported = errors.New("xaddr: named IPv6 zone is not supported")

	// ErrInvalidLength 表示二进制编码长度与地址族不符。
	ErrInvalidLength = errors.New("xaddr: invalid binary length")

	// ErrInvalidRule 表示无效的地址规则（单 IP/CIDR/范围）。
	ErrInvalidRule = errors.New("xaddr: invalid rule")

	// ErrNilReceiver 表示在 nil 接收者上调用反序列化方法。
	ErrNilReceiver = errors.New("xaddr: nil receiver")
)
