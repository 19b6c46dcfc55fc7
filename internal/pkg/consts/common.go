package consts

// gin / context keys
const (
	UserIDKey = "user_id"
	LocaleKey = "locale"
)
