package dto

import "bytes"

// FlexBool 与表单式客户端兼容的布尔值：true/false/1/0/"1"/"0"。
// 其他取值不会导致解码失败，而是标记为无效，由业务校验报告 boolean 错误。
type FlexBool struct {
	set     bool
	invalid bool
	value   bool
}

func NewFlexBool(v bool) FlexBool {
	return FlexBool{set: true, value: v}
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	*b = FlexBool{}
	switch string(bytes.TrimSpace(data)) {
	case "null":
	case "true", "1", `"1"`:
		b.set, b.value = true, true
	case "false", "0", `"0"`:
		b.set = true
	default:
		b.set, b.invalid = true, true
	}
	return nil
}

// Set reports whether the field was present and not null.
func (b FlexBool) Set() bool { return b.set }

func (b FlexBool) Valid() bool { return !b.invalid }

// Bool 缺省或无效时为 false
func (b FlexBool) Bool() bool { return b.set && !b.invalid && b.value }
