package xaddrtable_test

import (
	"fmt"

	"github.com/omeyang/qkit/pkg/platform/xaddr"
	"github.com/omeyang/qkit/pkg/platform/xaddrtable"
)

func ExampleTable() {
	var tbl xaddrtable.Table[string]

	tbl.Set(xaddr.MustParse("10.0.0.1:443"), "conn-1")
	tbl.Set(xaddr.MustParse("[2001:db8::1]:443"), "conn-2")

	v, ok := tbl.Get(xaddr.AddrFrom4([4]byte{10, 0, 0, 1}, 443))
	fmt.Println(v, ok)
	fmt.Println(tbl.Len())

	tbl.Delete(xaddr.MustParse("10.0.0.1:443"))
	fmt.Println(tbl.Len())
	// Output:
	// conn-1 true
	// 2
	// 1
}
