package util

import (
	"math"
	"strconv"
)

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}

// ParseID parses a path id; ok is false for anything but a positive integer
// that fits a signed BIGINT column.
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// StorableID 数据库驱动不接受最高位为 1 的 uint64，这样的 id 不可能存在
func StorableID(id uint64) bool {
	return id > 0 && id <= math.MaxInt64
}
