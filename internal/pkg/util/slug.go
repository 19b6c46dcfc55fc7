package util

import (
	"github.com/gosimple/slug"
)

func init() {
	// 与 slug 列宽度一致
	slug.MaxLength = 255
}

// Slugify 生成 URL 友好的 slug：小写、转写为 ASCII、用连字符分隔
// "Привіт, Світ!" -> "privit-svit"
func Slugify(title string) string {
	return slug.Make(title)
}
