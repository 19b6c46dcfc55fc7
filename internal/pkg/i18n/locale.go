package i18n

import (
	"golang.org/x/text/language"
)

const DefaultLocale = "uk"

var matcher = language.NewMatcher([]language.Tag{
	language.Ukrainian,
	language.English,
})

// Negotiate 根据 Accept-Language 选择语言；没有可接受的匹配时返回 fallback
func Negotiate(acceptLanguage, fallback string) string {
	if !Supported(fallback) {
		fallback = DefaultLocale
	}
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	switch idx {
	case 0:
		return "uk"
	case 1:
		return "en"
	}
	return fallback
}
