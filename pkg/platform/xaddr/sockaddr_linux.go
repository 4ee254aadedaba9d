//go:build linux

package xaddr

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// 本文件是进程内端点值与宿主 socket ABI 的唯一转换点。
// 内核 sockaddr 结构的端口字段在内存中是网络字节序；Go 原始结构体按
// 宿主字节序读写 uint16，因此进出时做一次显式置换（netport），
// 置换在任何宿主端序上都正确。

// netport 在宿主序 uint16 与"内存中网络字节序"的 uint16 之间转换。
// 置换是自逆的，进出共用。
func netport(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

// RawSockaddrInet4 返回端点的宿主 sockaddr_in 表示。
// 仅接受 FamilyV4，其余地址族返回 [ErrInvalidFamily]。
func (a Addr) RawSockaddrInet4() (unix.RawSockaddrInet4, error) {
	if a.family != FamilyV4 {
		return unix.RawSockaddrInet4{}, fmt.Errorf("%w: %s", ErrInvalidFamily, a.family)
	}
	return unix.RawSockaddrInet4{
		Family: unix.AF_INET,
		Port:   netport(a.Port()),
		Addr:   [4]byte(a.ip[:4]),
	}, nil
}

// RawSockaddrInet6 返回端点的宿主 sockaddr_in6 表示。
// 仅接受 FamilyV6，其余地址族返回 [ErrInvalidFamily]。
func (a Addr) RawSockaddrInet6() (unix.RawSockaddrInet6, error) {
	if a.family != FamilyV6 {
		return unix.RawSockaddrInet6{}, fmt.Errorf("%w: %s", ErrInvalidFamily, a.family)
	}
	return unix.RawSockaddrInet6{
		Family:   unix.AF_INET6,
		Port:     netport(a.Port()),
		Addr:     a.ip,
		Scope_id: a.scope,
	}, nil
}

// FromRawSockaddrInet4 从宿主 sockaddr_in 构造端点。
func FromRawSockaddrInet4(sa *unix.RawSockaddrInet4) Addr {
	return AddrFrom4(sa.Addr, netport(sa.Port))
}

// FromRawSockaddrInet6 从宿主 sockaddr_in6 构造端点。
// Scope_id 原样带入 scope id，flowinfo 丢弃。
func FromRawSockaddrInet6(sa *unix.RawSockaddrInet6) Addr {
	a := AddrFrom16(sa.Addr, netport(sa.Port))
	a.SetScopeID(sa.Scope_id)
	return a
}

// FromRawSockaddrAny 从内核返回的通用 sockaddr 缓冲构造端点，
// 按其地址族分派。AF_UNSPEC 返回通配零值端点；其他地址族返回
// [ErrInvalidFamily]。
func FromRawSockaddrAny(sa *unix.RawSockaddrAny) (Addr, error) {
	switch sa.Addr.Family {
	case unix.AF_INET:
		return FromRawSockaddrInet4((*unix.RawSockaddrInet4)(unsafe.Pointer(sa))), nil
	case unix.AF_INET6:
		return FromRawSockaddrInet6((*unix.RawSockaddrInet6)(unsafe.Pointer(sa))), nil
	case unix.AF_UNSPEC:
		return Addr{}, nil
	default:
		return Addr{}, fmt.Errorf("%w: raw family %d", ErrInvalidFamily, sa.Addr.Family)
	}
}
