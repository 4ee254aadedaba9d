package xstatus

import "fmt"

// Status 是 32 位有符号状态码。
//
// 数值遵循宿主操作系统的状态码约定（Unix errno / Windows NTSTATUS），
// 协议层将其视为不透明值：只通过本包命名常量引用，只通过
// [Succeeded] / [Failed] 判断成败，不做其他算术或比较。
type Status int32

// statusNames 按声明顺序列出全部状态概念。
// 用切片而非 switch/map：平台间数值不同，切片遍历对潜在的数值重合
// （首个匹配生效）与零值查找都有确定行为。
var statusNames = []struct {
	s    Status
	name string
}{
	{Success, "success"},
	{Pending, "pending"},
	{Continue, "continue"},
	{OutOfMemory, "out of memory"},
	{InvalidParameter, "invalid parameter"},
	{InvalidState, "invalid state"},
	{NotSupported, "not supported"},
	{NotFound, "not found"},
	{BufferTooSmall, "buffer too small"},
	{HandshakeFailure, "handshake failure"},
	{Aborted, "aborted"},
	{AddressInUse, "address in use"},
	{ConnectionTimeout, "connection timeout"},
	{ConnectionIdle, "connection idle"},
	{Unreachable, "unreachable"},
	{InternalError, "internal error"},
	{ServerBusy, "server busy"},
	{ProtocolError, "protocol error"},
	{VerNegError, "version negotiation error"},
	{UserCanceled, "user canceled"},
}

// String 返回状态概念的名称，仅用于日志与诊断。
// 未在概念表中的值返回 "status(0x...)" 形式。
func (s Status) String() string {
	for _, e := range statusNames {
		if e.s == s {
			return e.name
		}
	}
	return fmt.Sprintf("status(0x%08x)", uint32(s))
}

// All 返回全部 20 个状态概念，声明顺序稳定。
// 供诊断工具枚举使用（见 cmd/qaddrctl）。
func All() []Status {
	out := make([]Status, len(statusNames))
	for i, e := range statusNames {
		out[i] = e.s
	}
	return out
}
