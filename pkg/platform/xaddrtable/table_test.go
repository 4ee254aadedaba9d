package xaddrtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/qkit/pkg/platform/xaddr"
	"github.com/omeyang/qkit/pkg/platform/xaddrtable"
)

func TestTableBasics(t *testing.T) {
	var tbl xaddrtable.Table[string]

	// 零值可用
	_, ok := tbl.Get(xaddr.MustParse("10.0.0.1:443"))
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Len())
	assert.False(t, tbl.Delete(xaddr.MustParse("10.0.0.1:443")))

	a := xaddr.MustParse("10.0.0.1:443")
	b := xaddr.MustParse("[2001:db8::1]:443")

	tbl.Set(a, "conn-a")
	tbl.Set(b, "conn-b")
	assert.Equal(t, 2, tbl.Len())

	got, ok := tbl.Get(a)
	require.True(t, ok)
	assert.Equal(t, "conn-a", got)

	// 独立构造的同值端点命中同一条目
	got, ok = tbl.Get(xaddr.AddrFrom4([4]byte{10, 0, 0, 1}, 443))
	require.True(t, ok)
	assert.Equal(t, "conn-a", got)

	// 覆盖写
	tbl.Set(a, "conn-a2")
	assert.Equal(t, 2, tbl.Len())
	got, _ = tbl.Get(a)
	assert.Equal(t, "conn-a2", got)

	// 删除
	assert.True(t, tbl.Delete(a))
	assert.Equal(t, 1, tbl.Len())
	_, ok = tbl.Get(a)
	assert.False(t, ok)
	assert.False(t, tbl.Delete(a))
}

func TestTablePortDistinguishes(t *testing.T) {
	var tbl xaddrtable.Table[int]

	tbl.Set(xaddr.MustParse("192.168.1.1:443"), 1)
	tbl.Set(xaddr.MustParse("192.168.1.1:8443"), 2)
	assert.Equal(t, 2, tbl.Len())

	got, ok := tbl.Get(xaddr.MustParse("192.168.1.1:8443"))
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestTableScopeIgnored(t *testing.T) {
	// Equal 忽略 scope id：不同 scope 的同一端点是同一个 key
	a := xaddr.MustParse("[fe80::1%1]:443")
	b := xaddr.MustParse("[fe80::1%2]:443")

	var tbl xaddrtable.Table[string]
	tbl.Set(a, "first")
	tbl.Set(b, "second")
	assert.Equal(t, 1, tbl.Len())

	got, ok := tbl.Get(a)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestTableAll(t *testing.T) {
	var tbl xaddrtable.Table[int]
	want := map[string]int{
		"10.0.0.1:1":       1,
		"10.0.0.2:2":       2,
		"[2001:db8::1]:3":  3,
		"[2001:db8::2]:44": 44,
	}
	for s, v := range want {
		tbl.Set(xaddr.MustParse(s), v)
	}

	got := make(map[string]int, len(want))
	for k, v := range tbl.All() {
		got[k.String()] = v
	}
	assert.Equal(t, want, got)

	// 提前终止迭代
	n := 0
	for range tbl.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
