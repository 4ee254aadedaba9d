package xaddr

// Family 表示端点的地址族标签。
type Family uint16

const (
	// FamilyUnspecified 表示未指定地址族。
	// 携带此标签的端点没有地址/端口语义，仅作为通配符使用。
	FamilyUnspecified Family = 0
	// FamilyV4 表示 IPv4。
	FamilyV4 Family = 4
	// FamilyV6 表示 IPv6。
	FamilyV6 Family = 6
)

// IsValid 报告 f 是否为已定义的地址族。
// 仅 {FamilyUnspecified, FamilyV4, FamilyV6} 合法，其他标签值必须在
// 使用前被调用方拒绝（以 xstatus.InvalidParameter 上报，而非在本层报错）。
func (f Family) IsValid() bool {
	return f == FamilyUnspecified || f == FamilyV4 || f == FamilyV6
}

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case FamilyUnspecified:
		return "unspecified"
	case FamilyV4:
		return "IPv4"
	case FamilyV6:
		return "IPv6"
	default:
		return "invalid"
	}
}
