package xaddr

import "github.com/cespare/xxhash/v2"

// hashSeed 是 32 位端点哈希的固定种子（随机素数）。
const hashSeed uint32 = 5387

// Hash 返回端点的确定性 32 位哈希。
//
// 算法固定：种子 5387，对每个字节执行 h = h*31 + b（以 (h<<5)-h 实现），
// 依次折入网络字节序端口的两个字节（按存储顺序），再折入地址载荷字节
// （IPv4 折入 4 字节，其余折入 16 字节）。
//
// 契约：Equal(a, b) 为真则 Hash(a) == Hash(b)，可用作哈希索引的 key；
// 反向不成立。哈希不折入地址族，跨族碰撞由容器通过 Hash + Equal
// 组合查找规避（见 xaddrtable），任何查找结构不得只信任哈希。
func (a Addr) Hash() uint32 {
	h := hashSeed
	h = (h << 5) - h + uint32(a.port[0])
	h = (h << 5) - h + uint32(a.port[1])
	n := 16
	if a.family == FamilyV4 {
		n = 4
	}
	for _, b := range a.ip[:n] {
		h = (h << 5) - h + uint32(b)
	}
	return h
}

// Sum64 返回端点的确定性 64 位哈希（xxhash）。
//
// 供需要 64 位 key 的容器使用，与 [Addr.Hash] 的兼容哈希无关。
// 折入地址族、端口与按族选择的地址载荷，契约同样是
// Equal(a, b) ⇒ Sum64(a) == Sum64(b)。
//
// 设计决策: 与 Hash 不同，Sum64 折入地址族以降低跨族碰撞概率；
// Equal 要求同族，因此不破坏一致性契约。
func (a Addr) Sum64() uint64 {
	var buf [20]byte
	buf[0] = byte(a.family >> 8)
	buf[1] = byte(a.family)
	buf[2] = a.port[0]
	buf[3] = a.port[1]
	n := copy(buf[4:], a.ip[:])
	if a.family == FamilyV4 {
		n = 4
	}
	return xxhash.Sum64(buf[:4+n])
}
