package xaddr_test

import (
	"fmt"

	"github.com/omeyang/qkit/pkg/platform/xaddr"
)

func ExampleParse() {
	a := xaddr.MustParse("192.168.1.1:443")
	fmt.Println(a.Family())
	fmt.Println(a.Port())
	fmt.Println(a.IsWildcard())
	// Output:
	// IPv4
	// 443
	// false
}

func ExampleAddr_Equal() {
	a := xaddr.MustParse("192.168.1.1:443")
	b := xaddr.AddrFrom4([4]byte{192, 168, 1, 1}, 443)
	fmt.Println(a.Equal(b))
	fmt.Println(a.Hash() == b.Hash())

	b.SetPort(8443)
	fmt.Println(a.Equal(b))
	// Output:
	// true
	// true
	// false
}

func ExampleAddr_SetLoopback() {
	a := xaddr.MustParse("192.168.1.1:443")
	a.SetLoopback()
	fmt.Println(a)

	b := xaddr.MustParse("[2001:db8::1]:443")
	b.SetLoopback()
	fmt.Println(b)
	// Output:
	// 127.0.0.1:443
	// [::1]:443
}

func ExampleParseRuleSet() {
	set, err := xaddr.ParseRuleSet([]string{"10.0.0.0/8", "192.168.1.0/24"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(xaddr.MustParse("10.1.2.3:443").In(set))
	fmt.Println(xaddr.MustParse("172.16.0.1:443").In(set))
	// Output:
	// true
	// false
}
