package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyIsValid(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		want   bool
	}{
		{"unspecified", FamilyUnspecified, true},
		{"v4", FamilyV4, true},
		{"v6", FamilyV6, true},
		{"undefined tag 1", Family(1), false},
		{"undefined tag 17", Family(17), false},
		{"undefined tag max", Family(0xFFFF), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.family.IsValid())
		})
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "unspecified", FamilyUnspecified.String())
	assert.Equal(t, "IPv4", FamilyV4.String())
	assert.Equal(t, "IPv6", FamilyV6.String())
	assert.Equal(t, "invalid", Family(99).String())
}

func TestAddrIsValid(t *testing.T) {
	var a Addr
	assert.True(t, a.IsValid(), "零值为 unspecified，合法")

	a.SetFamily(FamilyV4)
	assert.True(t, a.IsValid())

	a.SetFamily(FamilyV6)
	assert.True(t, a.IsValid())

	// 未定义标签必须被拒绝
	a.SetFamily(Family(3))
	assert.False(t, a.IsValid())
}

func TestEqual(t *testing.T) {
	// 独立构造的同值端点必须相等
	a := AddrFrom4([4]byte{192, 168, 1, 1}, 443)
	b := AddrFrom4([4]byte{192, 168, 1, 1}, 443)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// 仅端口不同
	b.SetPort(8443)
	assert.False(t, a.Equal(b))

	// 仅地址不同
	c := AddrFrom4([4]byte{192, 168, 1, 2}, 443)
	assert.False(t, a.Equal(c))

	// 地址族不同（同样的前 4 字节载荷）
	var ip16 [16]byte
	copy(ip16[:4], []byte{192, 168, 1, 1})
	d := AddrFrom16(ip16, 443)
	assert.False(t, a.Equal(d))

	// IPv6 相等，scope id 不参与比较
	e := AddrFrom16([16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 0x01}, 4433)
	f := AddrFrom16([16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 0x01}, 4433)
	f.SetScopeID(3)
	assert.True(t, e.Equal(f))

	// 零值与零值
	assert.True(t, Addr{}.Equal(Addr{}))
}

func TestEqualIP(t *testing.T) {
	// 端口不同、地址相同 → EqualIP 为真
	a := AddrFrom4([4]byte{10, 0, 0, 1}, 1)
	b := AddrFrom4([4]byte{10, 0, 0, 1}, 2)
	assert.True(t, a.EqualIP(b))
	assert.False(t, a.Equal(b))

	// 地址不同
	c := AddrFrom4([4]byte{10, 0, 0, 2}, 1)
	assert.False(t, a.EqualIP(c))

	// IPv6：全 16 字节比较
	d := AddrFrom16([16]byte{0xfe, 0x80, 15: 0x01}, 0)
	e := AddrFrom16([16]byte{0xfe, 0x80, 15: 0x02}, 0)
	assert.False(t, d.EqualIP(e))
	e.ip[15] = 0x01
	assert.True(t, d.EqualIP(e))
}

func TestIsWildcard(t *testing.T) {
	tests := []struct {
		name string
		addr func() Addr
		want bool
	}{
		{"零值 unspecified", func() Addr { return Addr{} }, true},
		{"unspecified 载荷有脏字节仍为通配", func() Addr {
			a := AddrFrom4([4]byte{192, 168, 1, 1}, 443)
			a.SetFamily(FamilyUnspecified)
			return a
		}, true},
		{"v4 全零", func() Addr { return AddrFrom4([4]byte{}, 443) }, true},
		{"v4 非零", func() Addr { return AddrFrom4([4]byte{0, 0, 0, 1}, 0) }, false},
		{"v6 全零", func() Addr { return AddrFrom16([16]byte{}, 443) }, true},
		{"v6 非零", func() Addr { return AddrFrom16([16]byte{15: 1}, 0) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr().IsWildcard())
		})
	}
}

func TestSetLoopback(t *testing.T) {
	t.Run("v4 规范环回", func(t *testing.T) {
		a := AddrFrom4([4]byte{192, 168, 1, 1}, 443)
		a.SetLoopback()
		assert.Equal(t, [4]byte{127, 0, 0, 1}, [4]byte(a.ip[:4]))
		// family、端口不变
		assert.Equal(t, FamilyV4, a.Family())
		assert.Equal(t, uint16(443), a.Port())
	})

	t.Run("v6 规范环回", func(t *testing.T) {
		a := AddrFrom16([16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 0x09}, 4433)
		a.SetScopeID(7)
		a.SetLoopback()
		assert.Equal(t, [16]byte{15: 1}, a.ip)
		assert.Equal(t, FamilyV6, a.Family())
		assert.Equal(t, uint16(4433), a.Port())
		// scope id 不变
		assert.Equal(t, uint32(7), a.ScopeID())
	})
}

func TestPortRoundTrip(t *testing.T) {
	// 对全部 16 位端口穷举往返
	var a Addr
	for p := 0; p <= 0xFFFF; p++ {
		a.SetPort(uint16(p))
		require.Equal(t, uint16(p), a.Port(), "port %d", p)
	}
}

func TestPortNetworkOrderStorage(t *testing.T) {
	var a Addr
	a.SetPort(0x01BB) // 443
	// 内部必须按网络字节序（大端）存放原始位
	assert.Equal(t, [2]byte{0x01, 0xBB}, a.port)
}

func TestIsBoundExplicitly(t *testing.T) {
	// scope id 为 0 ⇔ 显式绑定，与其他字段无关
	a := AddrFrom16([16]byte{0xfe, 0x80, 15: 0x01}, 443)
	assert.True(t, a.IsBoundExplicitly())

	a.SetScopeID(4)
	assert.False(t, a.IsBoundExplicitly())

	a.SetScopeID(0)
	assert.True(t, a.IsBoundExplicitly())

	// IPv4 的 scope 恒为 0
	b := AddrFrom4([4]byte{10, 0, 0, 1}, 443)
	assert.True(t, b.IsBoundExplicitly())

	// 零值
	assert.True(t, Addr{}.IsBoundExplicitly())
}

func TestSetFamilyNoValidation(t *testing.T) {
	var a Addr
	a.SetFamily(Family(42))
	assert.Equal(t, Family(42), a.Family())
	assert.False(t, a.IsValid())
}
