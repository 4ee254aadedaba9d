// Package xaddrtable 提供以网络端点为 key 的哈希索引表。
//
// 传输层用它维护"对端端点 → 连接/绑定记录"的映射。查找严格遵循
// xaddr 的 key 契约：[xaddr.Addr.Hash] 只用来选桶，命中与否由
// [xaddr.Addr.Equal] 决定——Equal(a, b) ⇒ Hash(a) == Hash(b)
// 保证同一端点落在同一桶，反向不成立，因此桶内必须逐项确认。
//
// # 快速示例
//
//	var t xaddrtable.Table[*Conn]
//	t.Set(peer, conn)
//	if c, ok := t.Get(peer); ok {
//	    c.Send(pkt)
//	}
//
// # 并发
//
// Table 不做内部同步，由持有方（连接层分片）加锁。
// 这与 xaddr 的资源模型一致：本层纯数据，协调责任在调用方。
package xaddrtable
