package xstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	// 成功类：Success 与两个保留控制值
	for _, s := range []Status{Success, Pending, Continue} {
		t.Run(s.String(), func(t *testing.T) {
			assert.True(t, Succeeded(s))
			assert.False(t, Failed(s))
		})
	}

	// 其余 17 个概念全部属于失败类
	failures := []Status{
		OutOfMemory, InvalidParameter, InvalidState, NotSupported,
		NotFound, BufferTooSmall, HandshakeFailure, Aborted,
		AddressInUse, ConnectionTimeout, ConnectionIdle, Unreachable,
		InternalError, ServerBusy, ProtocolError, VerNegError,
		UserCanceled,
	}
	assert.Len(t, failures, 17)
	for _, s := range failures {
		t.Run(s.String(), func(t *testing.T) {
			assert.True(t, Failed(s))
			assert.False(t, Succeeded(s))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "handshake failure", HandshakeFailure.String())
	assert.Equal(t, "version negotiation error", VerNegError.String())
	assert.Equal(t, "user canceled", UserCanceled.String())

	// 概念表外的值输出十六进制形式
	assert.Contains(t, Status(0x12345678).String(), "status(0x12345678)")
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 20)
	assert.Equal(t, Success, all[0])

	// 每个概念的名称唯一
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		name := s.String()
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestConceptsDistinct(t *testing.T) {
	// 20 个概念必须映射到互不相同的宿主状态码
	seen := make(map[Status]string, 20)
	for _, s := range All() {
		if prev, ok := seen[s]; ok {
			t.Fatalf("status value %d shared by %q and %q", int32(s), prev, s.String())
		}
		seen[s] = s.String()
	}
}
