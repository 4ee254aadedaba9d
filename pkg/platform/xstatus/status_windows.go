//go:build windows

package xstatus

import (
	"context"
	"errors"

	"golang.org/x/sys/windows"
)

// Windows 映射：NTSTATUS 值，符号位清零为成功（含 informational 的
// Pending/Continue）。无原生对应码的概念使用 0xC0240000 起的私有区间
// （customer 位置位的 error severity facility，不与系统分配冲突）。
//
// 数值以字面量书写并在注释中标注 NTSTATUS 名称，
// 不依赖 x/sys/windows 对各 STATUS_* 常量的覆盖范围。
const (
	// Success 表示操作成功完成（STATUS_SUCCESS）。
	Success Status = 0x00000000
	// Pending 表示操作已受理、将异步完成（STATUS_PENDING）。
	Pending Status = 0x00000103
	// Continue 表示调用方应继续/重试当前操作（STATUS_REPARSE）。
	Continue Status = 0x00000104

	// customBase 是协议私有状态码区间基址（customer 位 + error severity）。
	customBase Status = -1071382528 // 0xC0240000

	// HandshakeFailure 表示加密握手失败（STATUS_QUIC_HANDSHAKE_FAILURE）。
	HandshakeFailure Status = customBase + 0
	// VerNegError 表示版本协商失败（STATUS_QUIC_VER_NEG_FAILURE）。
	VerNegError Status = customBase + 1
	// UserCanceled 表示对端应用主动取消连接（STATUS_QUIC_USER_CANCELED）。
	UserCanceled Status = customBase + 2

	// OutOfMemory 表示内存不足（STATUS_NO_MEMORY）。
	OutOfMemory Status = -1073741801 // 0xC0000017
	// InvalidParameter 表示调用参数无效（STATUS_INVALID_PARAMETER）。
	InvalidParameter Status = -1073741811 // 0xC000000D
	// InvalidState 表示对象当前状态不允许此操作（STATUS_INVALID_DEVICE_STATE）。
	InvalidState Status = -1073741436 // 0xC0000184
	// NotSupported 表示操作不被支持（STATUS_NOT_SUPPORTED）。
	NotSupported Status = -1073741637 // 0xC00000BB
	// NotFound 表示目标对象不存在（STATUS_NOT_FOUND）。
	NotFound Status = -1073741275 // 0xC0000225
	// BufferTooSmall 表示调用方提供的缓冲不足（STATUS_BUFFER_TOO_SMALL）。
	BufferTooSmall Status = -1073741789 // 0xC0000023
	// Aborted 表示操作被中止（STATUS_CANCELLED）。
	Aborted Status = -1073741536 // 0xC0000120
	// AddressInUse 表示本地地址已被占用（STATUS_ADDRESS_ALREADY_EXISTS）。
	AddressInUse Status = -1073741302 // 0xC000020A
	// ConnectionTimeout 表示连接握手/存活超时断开（STATUS_CONNECTION_DISCONNECTED）。
	ConnectionTimeout Status = -1073741300 // 0xC000020C
	// ConnectionIdle 表示连接因空闲超时关闭（STATUS_CONNECTION_ABORTED）。
	ConnectionIdle Status = -1073741247 // 0xC0000241
	// Unreachable 表示对端不可达（STATUS_HOST_UNREACHABLE）。
	Unreachable Status = -1073741251 // 0xC000023D
	// InternalError 表示实现内部错误（STATUS_INTERNAL_ERROR）。
	InternalError Status = -1073741595 // 0xC00000E5
	// ServerBusy 表示服务端拒绝新连接（STATUS_CONNECTION_REFUSED）。
	ServerBusy Status = -1073741258 // 0xC0000236
	// ProtocolError 表示对端违反协议（STATUS_CONNECTION_INVALID）。
	ProtocolError Status = -1073741254 // 0xC000023A
)

// Succeeded 报告状态码是否属于成功类（NT_SUCCESS：符号位清零）。
func Succeeded(s Status) bool { return s >= 0 }

// Failed 报告状态码是否属于失败类。
func Failed(s Status) bool { return s < 0 }

// FromError 把数据路径上的错误收敛进状态码空间。
// nil 返回 Success；NTStatus 直接映射；context 取消/超时映射为
// Aborted/ConnectionTimeout；其余未知错误归入 InternalError。
func FromError(err error) Status {
	if err == nil {
		return Success
	}
	var nt windows.NTStatus
	if errors.As(err, &nt) {
		return Status(nt)
	}
	switch {
	case errors.Is(err, context.Canceled):
		return Aborted
	case errors.Is(err, context.DeadlineExceeded):
		return ConnectionTimeout
	default:
		return InternalError
	}
}
