package xaddr

// Addr 表示一个 IPv4 或 IPv6 网络端点（地址 + 端口 + 可选 scope id），
// 由地址族标签 family 区分变体。
//
// Addr 是固定大小的值类型：
//   - 栈分配或按值内嵌到调用方结构（如连接记录），无独立生命周期
//   - 并发只读安全；并发读写同一共享值时由调用方同步（如 SetPort、SetLoopback）
//   - 所有操作纯函数、零分配、常数时间（仅与 4/16 字节地址长度成正比）
//
// 设计决策: 使用显式标签变体而非宿主 sockaddr 联合体的内存叠加。
// 进程内逻辑只依赖 family 选择有效载荷；与宿主 socket API 的二进制布局
// 转换收敛在 I/O 边界的显式转换函数中（见 sockaddr_linux.go），
// 避免让每个内部字段都绑定宿主 ABI 形状。
//
// 相等判断请使用 [Addr.Equal] 而非 ==：IPv4 变体不读取 ip[4:16]，
// == 会把这些未使用字节也纳入比较。本包所有构造路径都会清零未使用
// 字节，但经由二进制反序列化等外部途径得到的值不作此保证。
type Addr struct {
	family Family
	// port 以网络字节序（大端）存放原始端口位。
	// 对外统一以主机字节序暴露，见 [Addr.Port] / [Addr.SetPort]。
	port [2]byte
	// ip 存放地址载荷：IPv4 占用 ip[0:4]，IPv6 占用全部 16 字节。
	// 仅 family 选中的前缀有语义，未使用字节不参与任何判断。
	ip [16]byte
	// scope 是 IPv6 scope/zone id。IPv4 变体恒为 0（显式字段替代
	// 原 sockaddr 叠加布局中"按 IPv6 偏移读取"的捷径）。
	scope uint32
}

// AddrFrom4 从 4 字节 IPv4 地址和主机字节序端口构造端点。
func AddrFrom4(ip [4]byte, port uint16) Addr {
	a := Addr{family: FamilyV4}
	copy(a.ip[:4], ip[:])
	a.SetPort(port)
	return a
}

// AddrFrom16 从 16 字节 IPv6 地址和主机字节序端口构造端点。
// scope id 为 0，可随后用 [Addr.SetScopeID] 设置。
func AddrFrom16(ip [16]byte, port uint16) Addr {
	a := Addr{family: FamilyV6, ip: ip}
	a.SetPort(port)
	return a
}

// IsValid 报告端点的地址族标签是否合法。
// 本层不在每次操作时重复校验；接收不可信输入（如从线路解析的包）
// 的调用方必须先调用 IsValid 再使用其他操作。
func (a Addr) IsValid() bool {
	return a.family.IsValid()
}

// Family 返回地址族标签。
func (a Addr) Family() Family { return a.family }

// SetFamily 直接设置地址族标签，不做任何校验。
// 调用方负责随后满足 [Addr.IsValid]。
func (a *Addr) SetFamily(f Family) { a.family = f }

// Port 返回主机字节序的端口。
// 内部存储为网络字节序，此处做一次 16 位字节交换。
func (a Addr) Port() uint16 {
	return uint16(a.port[0])<<8 | uint16(a.port[1])
}

// SetPort 以主机字节序设置端口，内部转为网络字节序存放。
// 与 [Addr.Port] 使用同一字节置换，保证对任意 p 有 Port(SetPort(p)) == p。
func (a *Addr) SetPort(port uint16) {
	a.port[0] = byte(port >> 8)
	a.port[1] = byte(port)
}

// ScopeID 返回 IPv6 scope/zone id。IPv4 端点恒为 0。
func (a Addr) ScopeID() uint32 { return a.scope }

// SetScopeID 设置 IPv6 scope/zone id。
// 对 IPv4 端点无意义，调用方不应设置非零值。
func (a *Addr) SetScopeID(id uint32) { a.scope = id }

// IsBoundExplicitly 报告端点是否由应用显式绑定。
// scope id 为 0 表示显式绑定；非零 scope id 仅出现在经已连接传输
// 获取的链路本地上下文中。判断不依赖地址族（IPv4 的 scope 恒为 0）。
func (a Addr) IsBoundExplicitly() bool {
	return a.scope == 0
}

// EqualIP 报告两个端点的地址字节是否相等，忽略端口与 scope id。
// 按接收者的地址族选择比较宽度（IPv4 比较 4 字节，否则比较 16 字节），
// 不做任何归一化（不折叠 IPv4-mapped IPv6）。
//
// 调用方应保证两端点同族；混合地址族时按接收者宽度比较前缀，
// 结果无协议语义。需要族检查的比较请使用 [Addr.Equal]。
//
// 设计决策: 原始实现按联合体分支读取，混族调用是未定义行为。
// 这里载荷存储始终完整初始化，混族读取安全，仅语义无意义，
// 因此保留"快速、不检查"的原有语义而不引入运行时错误分支。
func (a Addr) EqualIP(b Addr) bool {
	if a.family == FamilyV4 {
		return [4]byte(a.ip[:4]) == [4]byte(b.ip[:4])
	}
	return a.ip == b.ip
}

// Equal 报告两个端点是否相等：地址族、端口、地址字节全部一致。
// 地址族或原始端口位不同时立即返回 false，不触碰地址载荷字节；
// 否则委托 [Addr.EqualIP]。scope id 不参与比较。
func (a Addr) Equal(b Addr) bool {
	if a.family != b.family || a.port != b.port {
		return false
	}
	return a.EqualIP(b)
}

// IsWildcard 报告端点是否为通配地址。
// FamilyUnspecified 恒为通配；IPv4/IPv6 地址字节全零时为通配。
func (a Addr) IsWildcard() bool {
	switch a.family {
	case FamilyUnspecified:
		return true
	case FamilyV4:
		return [4]byte(a.ip[:4]) == [4]byte{}
	default:
		return a.ip == [16]byte{}
	}
}

// SetLoopback 将地址载荷原地改写为当前地址族的规范环回地址
// （IPv4: 127.0.0.1；IPv6: ::1），family、端口、scope id 不变。
// 调用前必须已设置 FamilyV4 或 FamilyV6；FamilyUnspecified 下无定义。
func (a *Addr) SetLoopback() {
	if a.family == FamilyV4 {
		a.ip[0], a.ip[1], a.ip[2], a.ip[3] = 127, 0, 0, 1
		return
	}
	a.ip = [16]byte{15: 1}
}
