package xaddr

import (
	"fmt"
	"net/netip"
	"strconv"
)

// FromAddrPort 从 [netip.AddrPort] 构造端点。
//
// 纯 IPv4 地址产生 FamilyV4 变体；IPv6（含 IPv4-mapped IPv6，不做折叠）
// 产生 FamilyV6 变体。数字 zone（如 "fe80::1%3"）映射为 scope id；
// 接口名 zone 返回 [ErrZoneNotSupported]（名称解析是本层之外的协作者）。
// 无效地址返回 [ErrInvalidAddress]。
func FromAddrPort(ap netip.AddrPort) (Addr, error) {
	ip := ap.Addr()
	if !ip.IsValid() {
		return Addr{}, ErrInvalidAddress
	}
	if ip.Is4() {
		return AddrFrom4(ip.As4(), ap.Port()), nil
	}
	a := AddrFrom16(ip.As16(), ap.Port())
	if zone := ip.Zone(); zone != "" {
		id, err := strconv.ParseUint(zone, 10, 32)
		if err != nil {
			return Addr{}, fmt.Errorf("%w: %q", ErrZoneNotSupported, zone)
		}
		a.SetScopeID(uint32(id))
	}
	return a, nil
}

// AddrPort 返回端点的 [netip.AddrPort] 表示。
// FamilyUnspecified 或非法地址族返回 (零值, false)。
// 非零 scope id 以数字 zone 形式带出。
func (a Addr) AddrPort() (netip.AddrPort, bool) {
	switch a.family {
	case FamilyV4:
		return netip.AddrPortFrom(netip.AddrFrom4([4]byte(a.ip[:4])), a.Port()), true
	case FamilyV6:
		ip := netip.AddrFrom16(a.ip)
		if a.scope != 0 {
			ip = ip.WithZone(strconv.FormatUint(uint64(a.scope), 10))
		}
		return netip.AddrPortFrom(ip, a.Port()), true
	default:
		return netip.AddrPort{}, false
	}
}

// Parse 解析 "ip:port" / "[v6]:port" / "[v6%zone]:port" 形式的端点。
// zone 仅接受数字 scope id，接口名返回 [ErrZoneNotSupported]。
func Parse(s string) (Addr, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return FromAddrPort(ap)
}

// MustParse 是 [Parse] 的 panic 版本，仅用于测试和常量初始化。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String 返回端点的字符串表示，与 [Parse] 往返一致。
// FamilyUnspecified 或非法地址族返回空字符串（与 netip 零值行为一致）。
func (a Addr) String() string {
	ap, ok := a.AddrPort()
	if !ok {
		return ""
	}
	return ap.String()
}

// LocalhostName 返回给定地址族的本机主机名占位串。
// 本层不执行真实反向解析（名称解析是外部协作者），恒返回 "localhost"。
func LocalhostName(_ Family) string {
	return "localhost"
}
