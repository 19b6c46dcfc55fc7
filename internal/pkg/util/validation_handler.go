package util

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 校验规则名，同时也是 i18n 中的消息键后缀
const (
	RuleRequired = "required"
	RuleMax      = "max"
	RuleExists   = "exists"
	RuleNotIn    = "not_in"
	RuleBoolean  = "boolean"
	RuleInvalid  = "invalid"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError 单个字段的单条失败规则
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// ValidationError collects every failed rule of a request, in field order.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	first := e.Errors[0]
	return "validation failed: " + first.Field + " " + first.Rule
}

func (e *ValidationError) Add(field, rule, param string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Rule: rule, Param: param})
}

// Has reports whether field already failed, so later rules on it can be skipped.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when nothing failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// ValidateDTO 校验 DTO 的 validate 标签，返回的 ValidationError 永不为 nil
func ValidateDTO(dto any) (*ValidationError, error) {
	vErr := &ValidationError{}
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return nil, err
		}
		for _, fe := range vErrs {
			vErr.Add(fe.Field(), RuleFor(fe.Tag()), fe.Param())
		}
	}
	return vErr, nil
}

// RuleFor maps a validator tag onto a rule name with a message.
func RuleFor(tag string) string {
	switch tag {
	case "required", "max":
		return tag
	case "boolean":
		return RuleBoolean
	default:
		return RuleInvalid
	}
}
