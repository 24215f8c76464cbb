package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"storefront_checkout/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const (
	MessageRequired     = "필수 입력 항목입니다."
	MessageInvalidPhone = "올바른 연락처 형식이 아닙니다."
)

// Messages of the delivery check run on submit, in check order.
const (
	MessageRecipientRequired   = "받는사람을 입력해주세요."
	MessageAddressRequired     = "주소를 입력해주세요."
	MessagePhoneRequired       = "휴대전화를 입력해주세요."
	MessageEmailRequired       = "이메일을 입력해주세요."
	MessageEmailDomainRequired = "이메일 도메인을 선택해주세요."
)

var phonePattern = regexp.MustCompile(`^[0-9\-+\s()]+$`)

// FormValidator runs the per-field rules declared on entities.DeliveryForm.
type FormValidator struct {
	validate *validator.Validate
	rules    map[string]string
}

func NewFormValidator() *FormValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("phone", phoneChars)

	return &FormValidator{validate: v, rules: fieldRules()}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func phoneChars(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func fieldRules() map[string]string {
	rules := map[string]string{}
	t := reflect.TypeOf(entities.DeliveryForm{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag := f.Tag.Get("validate"); tag != "" && name != "" {
			rules[name] = tag
		}
	}
	return rules
}

// HasRules reports whether the field has any validation rule.
func (fv *FormValidator) HasRules(field string) bool {
	_, ok := fv.rules[field]
	return ok
}

// ValidateField checks one field value and returns its inline message, or ""
// when the value is valid. Fields without rules are always valid.
func (fv *FormValidator) ValidateField(field, value string) string {
	tag, ok := fv.rules[field]
	if !ok {
		return ""
	}
	err := fv.validate.Var(value, tag)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return messageFor(verrs[0].Tag())
	}
	return MessageRequired
}

// ValidateForm checks every field and returns one message per invalid field.
// An empty map means the form is valid.
func (fv *FormValidator) ValidateForm(form entities.DeliveryForm) map[string]string {
	out := map[string]string{}
	err := fv.validate.Struct(form)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		for field := range fv.rules {
			out[field] = MessageRequired
		}
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe.Tag())
	}
	return out
}

func messageFor(tag string) string {
	if tag == "phone" {
		return MessageInvalidPhone
	}
	return MessageRequired
}

// CheckDelivery is the submit-time delivery check. It stops at the first
// missing value and returns its message, or "" when the form is complete.
func CheckDelivery(form entities.DeliveryForm) string {
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }
	switch {
	case blank(form.RecipientName):
		return MessageRecipientRequired
	case blank(form.Address):
		return MessageAddressRequired
	case blank(form.Phone1), blank(form.Phone2), blank(form.Phone3):
		return MessagePhoneRequired
	case blank(form.EmailID):
		return MessageEmailRequired
	case blank(form.EmailDomain):
		return MessageEmailDomainRequired
	}
	return ""
}
