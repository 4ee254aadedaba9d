package xaddr

import (
	"encoding/json"
	"fmt"
)

// 二进制编码布局（定长，按地址族）：
//
//	FamilyUnspecified: [family:2]                        共 2 字节
//	FamilyV4:          [family:2][port:2][ip:4]          共 8 字节
//	FamilyV6:          [family:2][port:2][ip:16][scope:4] 共 24 字节
//
// 所有多字节字段大端存放。未使用的载荷字节不编码，
// 反序列化得到的值未使用字节恒为零，可安全用 ==。
const (
	binLenUnspecified = 2
	binLenV4          = 8
	binLenV6          = 24
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出与 [Addr.String] 相同的 "ip:port" 文本形式。
// FamilyUnspecified 输出空字节切片。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持 [Parse] 支持的全部形式，空输入置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的文本形式字符串。
// FamilyUnspecified 输出空字符串（""），保证 JSON 往返一致性。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 空字符串或 null 置为零值。对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，使用文件头注释所述定长布局。
// 非法地址族返回 [ErrInvalidFamily]。
func (a Addr) MarshalBinary() ([]byte, error) {
	switch a.family {
	case FamilyUnspecified:
		return []byte{byte(a.family >> 8), byte(a.family)}, nil
	case FamilyV4:
		buf := make([]byte, binLenV4)
		buf[0], buf[1] = byte(a.family>>8), byte(a.family)
		buf[2], buf[3] = a.port[0], a.port[1]
		copy(buf[4:], a.ip[:4])
		return buf, nil
	case FamilyV6:
		buf := make([]byte, binLenV6)
		buf[0], buf[1] = byte(a.family>>8), byte(a.family)
		buf[2], buf[3] = a.port[0], a.port[1]
		copy(buf[4:20], a.ip[:])
		buf[20] = byte(a.scope >> 24)
		buf[21] = byte(a.scope >> 16)
		buf[22] = byte(a.scope >> 8)
		buf[23] = byte(a.scope)
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFamily, uint16(a.family))
	}
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 长度与地址族不符返回 [ErrInvalidLength]，未定义地址族返回 [ErrInvalidFamily]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(data) < 2 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(data))
	}
	family := Family(uint16(data[0])<<8 | uint16(data[1]))
	var out Addr
	out.family = family
	switch family {
	case FamilyUnspecified:
		if len(data) != binLenUnspecified {
			return fmt.Errorf("%w: %d bytes for %s", ErrInvalidLength, len(data), family)
		}
	case FamilyV4:
		if len(data) != binLenV4 {
			return fmt.Errorf("%w: %d bytes for %s", ErrInvalidLength, len(data), family)
		}
		out.port[0], out.port[1] = data[2], data[3]
		copy(out.ip[:4], data[4:])
	case FamilyV6:
		if len(data) != binLenV6 {
			return fmt.Errorf("%w: %d bytes for %s", ErrInvalidLength, len(data), family)
		}
		out.port[0], out.port[1] = data[2], data[3]
		copy(out.ip[:], data[4:20])
		out.scope = uint32(data[20])<<24 | uint32(data[21])<<16 | uint32(data[22])<<8 | uint32(data[23])
	default:
		return fmt.Errorf("%w: %d", ErrInvalidFamily, uint16(family))
	}
	*a = out
	return nil
}
