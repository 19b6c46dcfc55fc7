package response

import (
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/pkg/consts"
	"Bloghouse/internal/pkg/i18n"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Locale 当前请求协商出的语言，未经过 LocaleMiddleware 时为默认语言
func Locale(c *gin.Context) string {
	if locale := c.GetString(consts.LocaleKey); locale != "" {
		return locale
	}
	return i18n.DefaultLocale
}

// Success 成功返回封装，msgKey 为空时不返回 message
func Success(c *gin.Context, status int, data interface{}, msgKey i18n.Key) {
	resp := dto.Response{Success: true, Data: data}
	if msgKey != "" {
		resp.Message = i18n.T(Locale(c), msgKey)
	}
	c.JSON(status, resp)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, msgKey i18n.Key) {
	c.JSON(status, dto.Response{
		Success: false,
		Message: i18n.T(Locale(c), msgKey),
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	locale := Locale(c)

	var vErr *util.ValidationError
	if errors.As(err, &vErr) {
		validationFailed(c, locale, vErr)
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		converted := &util.ValidationError{}
		for _, fe := range ve {
			converted.Add(fe.Field(), util.RuleFor(fe.Tag()), fe.Param())
		}
		validationFailed(c, locale, converted)
		return
	}

	if field, rule, ok := decodeError(err); ok {
		converted := &util.ValidationError{}
		converted.Add(field, rule, "")
		validationFailed(c, locale, converted)
		return
	}

	info, ok := service.LookupError(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, http.StatusInternalServerError, i18n.ServerError)
		return
	}
	if info.Status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "server error", "err", err)
	}
	Fail(c, info.Status, info.Message)
}

func validationFailed(c *gin.Context, locale string, vErr *util.ValidationError) {
	resp := dto.Response{
		Success: false,
		Message: i18n.T(locale, i18n.ValidationFailed),
		Errors:  make(map[string][]string, len(vErr.Errors)),
	}
	for i, fe := range vErr.Errors {
		msg := i18n.FieldMessage(locale, fe.Field, fe.Rule, fe.Param)
		if i == 0 {
			resp.Message = msg
		}
		resp.Errors[fe.Field] = append(resp.Errors[fe.Field], msg)
	}
	c.JSON(http.StatusUnprocessableEntity, resp)
}

// decodeError 识别请求体解码失败；类型不符时返回字段名，否则以 body 作为字段
func decodeError(err error) (field, rule string, ok bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fieldOr(typeErr.Field), ruleForType(typeErr.Type), true
	}
	var stdTypeErr *stdjson.UnmarshalTypeError
	if errors.As(err, &stdTypeErr) {
		return fieldOr(stdTypeErr.Field), ruleForType(stdTypeErr.Type), true
	}
	var syntaxErr *json.SyntaxError
	var stdSyntaxErr *stdjson.SyntaxError
	if errors.As(err, &syntaxErr) || errors.As(err, &stdSyntaxErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "body", util.RuleInvalid, true
	}
	return "", "", false
}

func ruleForType(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Bool {
		return util.RuleBoolean
	}
	return util.RuleInvalid
}

func fieldOr(field string) string {
	if field == "" {
		return "body"
	}
	return field
}
