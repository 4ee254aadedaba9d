package xaddr

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParseRule 解析一条地址规则。支持 3 种格式：
//   - 单 IP: "192.168.1.1"
//   - CIDR: "192.168.1.0/24"
//   - 范围: "192.168.1.1-192.168.1.100"
//
// 输入会自动去除首尾空白字符。
//
// 设计决策: 拒绝包含 IPv6 zone 的输入（如 fe80::1%eth0）。
// netipx.IPRange/IPSet 会静默丢弃 zone 信息，导致规则匹配失败
// （对端筛选误判），属于高风险正确性问题。
func ParseRule(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "%") {
		return netipx.IPRange{}, fmt.Errorf("%w: IPv6 zone is not supported in rules: %s", ErrInvalidRule, s)
	}

	// 范围 "start-end"
	if idx := strings.Index(s, "-"); idx >= 0 {
		start, startErr := netip.ParseAddr(strings.TrimSpace(s[:idx]))
		end, endErr := netip.ParseAddr(strings.TrimSpace(s[idx+1:]))
		if startErr != nil || endErr != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: %s", ErrInvalidRule, s)
		}
		r := netipx.IPRangeFrom(start, end)
		if !r.IsValid() {
			return netipx.IPRange{}, fmt.Errorf("%w: %s", ErrInvalidRule, s)
		}
		return r, nil
	}

	// CIDR "addr/bits"
	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid CIDR: %w", ErrInvalidRule, err)
		}
		return netipx.RangeOfPrefix(prefix.Masked()), nil
	}

	// 单 IP
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	return netipx.IPRangeFrom(addr, addr), nil
}

// ParseRuleSet 解析规则切片并合并为 [*netipx.IPSet]。
// 每条规则使用 [ParseRule] 解析，重叠范围自动合并，查询 O(log n)。
// 空切片或 nil 返回空集合。
func ParseRuleSet(rules []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, s := range rules {
		r, err := ParseRule(s)
		if err != nil {
			return nil, fmt.Errorf("parse rule %q: %w", s, err)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}

// In 报告端点的地址是否落在规则集合内，忽略端口与 scope id。
// FamilyUnspecified、非法地址族或 nil 集合返回 false。
//
// 传输层用它在握手前筛选对端地址（允许/拒绝名单）。
func (a Addr) In(set *netipx.IPSet) bool {
	if set == nil {
		return false
	}
	switch a.family {
	case FamilyV4:
		return set.Contains(netip.AddrFrom4([4]byte(a.ip[:4])))
	case FamilyV6:
		return set.Contains(netip.AddrFrom16(a.ip))
	default:
		return false
	}
}
