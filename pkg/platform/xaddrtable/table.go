package xaddrtable

import (
	"iter"

	"github.com/omeyang/qkit/pkg/platform/xaddr"
)

// Table 是以网络端点为 key 的哈希索引表。
//
// 查找分两级：[xaddr.Addr.Hash] 选桶，桶内逐项用 [xaddr.Addr.Equal]
// 确认——哈希不折入地址族，跨族同哈希的端点靠 Equal 区分，
// 任何路径都不单独信任哈希值。
//
// 零值可直接使用。Table 不做内部同步：持有它的连接层按自身分片
// 加锁（端点层的约定是共享值的并发写由调用方同步）。
//
// 设计决策: 不复用 map[xaddr.Addr]V。Addr 的 == 会比较 IPv4 变体
// 未使用的载荷字节与 scope id，与协议相等语义（Equal 忽略 scope、
// 按族取宽）不一致；显式两级结构还保证了 Hash/Equal 契约被真实执行。
type Table[V any] struct {
	buckets map[uint32][]entry[V]
	size    int
}

type entry[V any] struct {
	key xaddr.Addr
	val V
}

// Get 返回端点对应的值。未命中返回 (零值, false)。
func (t *Table[V]) Get(key xaddr.Addr) (V, bool) {
	for _, e := range t.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Set 插入或覆盖端点对应的值。
func (t *Table[V]) Set(key xaddr.Addr, val V) {
	if t.buckets == nil {
		t.buckets = make(map[uint32][]entry[V])
	}
	h := key.Hash()
	bucket := t.buckets[h]
	for i, e := range bucket {
		if e.key.Equal(key) {
			bucket[i].val = val
			return
		}
	}
	t.buckets[h] = append(bucket, entry[V]{key: key, val: val})
	t.size++
}

// Delete 移除端点对应的条目，返回是否存在。
func (t *Table[V]) Delete(key xaddr.Addr) bool {
	h := key.Hash()
	bucket := t.buckets[h]
	for i, e := range bucket {
		if !e.key.Equal(key) {
			continue
		}
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket = bucket[:last]
		if len(bucket) == 0 {
			delete(t.buckets, h)
		} else {
			t.buckets[h] = bucket
		}
		t.size--
		return true
	}
	return false
}

// Len 返回条目数。
func (t *Table[V]) Len() int { return t.size }

// All 返回全部条目的迭代器，顺序不确定。
// 迭代期间不得修改 Table。
func (t *Table[V]) All() iter.Seq2[xaddr.Addr, V] {
	return func(yield func(xaddr.Addr, V) bool) {
		for _, bucket := range t.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}
