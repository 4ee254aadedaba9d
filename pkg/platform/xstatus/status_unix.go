//go:build unix

package xstatus

import (
	"context"
	"errors"

	"golang.org/x/sys/unix"
)

// Unix 映射：0 成功；负值为保留控制值（视为成功）；正值失败。
// 失败概念尽量复用 errno，无对应物的概念使用 customBase 起的私有区间，
// 远超 errno 值域（Linux errno < 4096），与现有及未来分配不冲突。
const (
	// Success 表示操作成功完成。
	Success Status = 0
	// Continue 表示调用方应继续/重试当前操作。
	Continue Status = -1
	// Pending 表示操作已受理、将异步完成。
	Pending Status = -2

	// customBase 是协议私有状态码区间基址。
	customBase Status = 0x20240000

	// HandshakeFailure 表示加密握手失败（无宿主原生对应码）。
	HandshakeFailure Status = customBase + 0
	// VerNegError 表示版本协商失败（无宿主原生对应码）。
	VerNegError Status = customBase + 1
	// UserCanceled 表示对端应用主动取消连接（无宿主原生对应码）。
	UserCanceled Status = customBase + 2

	// OutOfMemory 表示内存不足。
	OutOfMemory Status = Status(unix.ENOMEM)
	// InvalidParameter 表示调用参数无效。
	InvalidParameter Status = Status(unix.EINVAL)
	// InvalidState 表示对象当前状态不允许此操作。
	InvalidState Status = Status(unix.EPERM)
	// NotSupported 表示操作不被支持。
	NotSupported Status = Status(unix.EOPNOTSUPP)
	// NotFound 表示目标对象不存在。
	NotFound Status = Status(unix.ENOENT)
	// BufferTooSmall 表示调用方提供的缓冲不足。
	BufferTooSmall Status = Status(unix.EOVERFLOW)
	// Aborted 表示操作被中止。
	Aborted Status = Status(unix.ECANCELED)
	// AddressInUse 表示本地地址已被占用。
	AddressInUse Status = Status(unix.EADDRINUSE)
	// ConnectionTimeout 表示连接握手/存活超时断开。
	ConnectionTimeout Status = Status(unix.ETIMEDOUT)
	// ConnectionIdle 表示连接因空闲超时关闭。
	ConnectionIdle Status = Status(unix.ETIME)
	// Unreachable 表示对端不可达。
	Unreachable Status = Status(unix.EHOSTUNREACH)
	// InternalError 表示实现内部错误。
	InternalError Status = Status(unix.EIO)
	// ServerBusy 表示服务端拒绝新连接。
	ServerBusy Status = Status(unix.ECONNREFUSED)
	// ProtocolError 表示对端违反协议。
	ProtocolError Status = Status(unix.EPROTO)
)

// Succeeded 报告状态码是否属于成功类（含 Pending/Continue）。
func Succeeded(s Status) bool { return s <= 0 }

// Failed 报告状态码是否属于失败类。
func Failed(s Status) bool { return s > 0 }

// FromError 把数据路径上的错误收敛进状态码空间。
// nil 返回 Success；errno 直接映射；context 取消/超时映射为
// Aborted/ConnectionTimeout；其余未知错误归入 InternalError。
func FromError(err error) Status {
	if err == nil {
		return Success
	}
	var errno unix.Errno
	if errors.As(err, &errno) {
		return Status(errno)
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
