// Package xaddr 提供 QUIC 传输实现的网络端点值类型。
//
// xaddr 将操作系统的 IPv4/IPv6 socket 地址表示收拢为一个固定大小的
// 标签变体类型 [Addr]（地址族 + 端口 + 地址载荷 + scope id），并提供
// 一组纯函数操作：有效性校验、相等比较、仅地址比较、通配/环回判断、
// 地址族与端口访问、显式绑定判断和稳定哈希。
// 传输层的每个连接、每次包发送、每个路由决策都以这里的相等与哈希为 key。
//
// # 快速示例
//
// 构造与判断：
//
//	a := xaddr.MustParse("192.168.1.1:443")
//	fmt.Println(a.Family())     // IPv4
//	fmt.Println(a.Port())       // 443
//	fmt.Println(a.IsWildcard()) // false
//
// 相等与哈希（哈希索引的 key 契约）：
//
//	b := xaddr.AddrFrom4([4]byte{192, 168, 1, 1}, 443)
//	fmt.Println(a.Equal(b))             // true
//	fmt.Println(a.Hash() == b.Hash())   // true（Equal ⇒ Hash 相等）
//
// 对端地址筛选：
//
//	set, _ := xaddr.ParseRuleSet([]string{"10.0.0.0/8", "192.168.1.0/24"})
//	fmt.Println(a.In(set)) // true
//
// # 设计决策
//
//   - [Addr] 是显式标签变体而非宿主 sockaddr 联合体叠加：进程内逻辑
//     按 family 选择载荷，宿主 ABI 转换收敛在 I/O 边界的显式函数中
//     （Linux 见 RawSockaddrInet4/6 与 FromRawSockaddr*）
//   - 端口内部存网络字节序，对外主机字节序，出入共用同一 16 位字节置换
//   - 比较不做任何归一化：IPv4-mapped IPv6 与纯 IPv4 是不同端点
//   - [Addr.Hash] 保持与既有连接索引兼容的 5387/31 逐字节递推；
//     [Addr.Sum64] 为需要 64 位 key 的容器提供 xxhash 摘要
//   - 哈希不可单独作为查找依据，必须与 [Addr.Equal] 组合（见 xaddrtable）
//   - 本层无 I/O、无分配、无锁；共享值的并发写由调用方同步
//
// # 有效性与预条件
//
// 来自不可信输入（线路解析的包）的端点必须先过 [Addr.IsValid] 再使用
// 其他操作，本层不在每次调用时重复校验。[Addr.SetLoopback] 要求已设置
// FamilyV4/FamilyV6；[Addr.EqualIP] 假定两端点同族，混族比较无协议语义。
//
// # 错误处理
//
// 可失败的只有解析/转换/反序列化入口，预定义错误变量支持 errors.Is：
//
//	_, err := xaddr.Parse("[fe80::1%eth0]:443")
//	if errors.Is(err, xaddr.ErrZoneNotSupported) {
//	    // 接口名 zone 需要外部解析
//	}
//
// 纯操作（比较、哈希、判断）永不失败。
package xaddr
