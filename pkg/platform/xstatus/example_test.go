//go:build unix

package xstatus_test

import (
	"fmt"

	"github.com/omeyang/qkit/pkg/platform/xstatus"
)

func ExampleFailed() {
	fmt.Println(xstatus.Failed(xstatus.Success))
	fmt.Println(xstatus.Failed(xstatus.Pending))
	fmt.Println(xstatus.Failed(xstatus.HandshakeFailure))
	// Output:
	// false
	// false
	// true
}

func ExampleStatus_String() {
	fmt.Println(xstatus.VerNegError)
	fmt.Println(xstatus.ConnectionIdle)
	// Output:
	// version negotiation error
	// connection idle
}
