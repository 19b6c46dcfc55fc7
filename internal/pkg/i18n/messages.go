package i18n

import (
	"fmt"
	"strings"
)

// Key 用户可见消息的键
type Key string

const (
	CategoryNotFound       Key = "category.not_found"
	CategoryCreated        Key = "category.created"
	CategoryUpdated        Key = "category.updated"
	CategoryDeleted        Key = "category.deleted"
	CategoryDeleteRoot     Key = "category.delete_root"
	CategoryDeleteHasChild Key = "category.delete_has_children"
	CategoryDeleteHasPosts Key = "category.delete_has_posts"
	PostNotFound           Key = "post.not_found"
	PostCreated            Key = "post.created"
	PostUpdated            Key = "post.updated"
	PostDeleted            Key = "post.deleted"
	ValidationFailed       Key = "validation.failed"
	ValidationRequired     Key = "validation.required"
	ValidationMax          Key = "validation.max"
	ValidationExists       Key = "validation.exists"
	ValidationNotIn        Key = "validation.not_in"
	ValidationBoolean      Key = "validation.boolean"
	ValidationInvalid      Key = "validation.invalid"
	AuthTokenMissing       Key = "auth.token_missing"
	AuthTokenInvalid       Key = "auth.token_invalid"
	AuthUnknownUser        Key = "auth.unknown_user"
	ServerIdentityMissing  Key = "server.identity_missing"
	ServerError            Key = "server.error"
	RouteNotFound          Key = "route.not_found"
	MethodNotAllowed       Key = "route.method_not_allowed"
)

// 原始客户端使用的乌克兰语文案保持不变
var messages = map[string]map[Key]string{
	"uk": {
		CategoryNotFound:       "Категорію не знайдено",
		CategoryCreated:        "Категорію успішно створено",
		CategoryUpdated:        "Категорію успішно оновлено",
		CategoryDeleted:        "Категорію успішно видалено",
		CategoryDeleteRoot:     "Неможливо видалити кореневу категорію",
		CategoryDeleteHasChild: "Неможливо видалити категорію, яка має дочірні категорії",
		CategoryDeleteHasPosts: "Неможливо видалити категорію, в якій є пости",
		PostNotFound:           "Пост не знайдено",
		PostCreated:            "Пост успішно створено",
		PostUpdated:            "Пост успішно оновлено",
		PostDeleted:            "Пост успішно видалено",
		ValidationFailed:       "Надані дані некоректні",
		ValidationRequired:     "Поле %s є обов'язковим для заповнення.",
		ValidationMax:          "Текст в полі %s не може містити більше %s символів.",
		ValidationExists:       "Вибране для %s значення не коректне.",
		ValidationNotIn:        "Вибране для %s значення не коректне.",
		ValidationBoolean:      "Поле %s повинне містити логічний тип.",
		ValidationInvalid:      "Поле %s має некоректний формат.",
		AuthTokenMissing:       "Токен відсутній або має невірний формат",
		AuthTokenInvalid:       "Токен недійсний або прострочений",
		AuthUnknownUser:        "Користувача не знайдено",
		ServerIdentityMissing:  "Не вдалося визначити автора запиту",
		ServerError:            "Внутрішня помилка сервера, спробуйте пізніше",
		RouteNotFound:          "Маршрут не знайдено",
		MethodNotAllowed:       "Метод не підтримується для цього маршруту",
	},
	"en": {
		CategoryNotFound:       "Category not found",
		CategoryCreated:        "Category created successfully",
		CategoryUpdated:        "Category updated successfully",
		CategoryDeleted:        "Category deleted successfully",
		CategoryDeleteRoot:     "The root category cannot be deleted",
		CategoryDeleteHasChild: "A category with child categories cannot be deleted",
		CategoryDeleteHasPosts: "A category that contains posts cannot be deleted",
		PostNotFound:           "Post not found",
		PostCreated:            "Post created successfully",
		PostUpdated:            "Post updated successfully",
		PostDeleted:            "Post deleted successfully",
		ValidationFailed:       "The given data was invalid",
		ValidationRequired:     "The %s field is required.",
		ValidationMax:          "The %s field must not be greater than %s characters.",
		ValidationExists:       "The selected %s is invalid.",
		ValidationNotIn:        "The selected %s is invalid.",
		ValidationBoolean:      "The %s field must be true or false.",
		ValidationInvalid:      "The %s field has an invalid format.",
		AuthTokenMissing:       "Token is missing or malformed",
		AuthTokenInvalid:       "Token is invalid or expired",
		AuthUnknownUser:        "User not found",
		ServerIdentityMissing:  "The request author could not be determined",
		ServerError:            "Internal server error, please retry later",
		RouteNotFound:          "Route not found",
		MethodNotAllowed:       "Method not allowed for this route",
	},
}

// Supported 已有文案的语言
func Supported(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// T 返回 locale 下的文案；未知 locale 回退到 DefaultLocale，未知键原样返回
func T(locale string, key Key, args ...any) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[DefaultLocale]
	}
	msg, ok := table[key]
	if !ok {
		return string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// FieldMessage renders one failed validation rule for a request field.
func FieldMessage(locale, field, rule, param string) string {
	key := Key("validation." + rule)
	attr := strings.ReplaceAll(field, "_", " ")
	if rule == "max" {
		return T(locale, key, attr, param)
	}
	return T(locale, key, attr)
}
