package common

import (
	"errors"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"campus-portal-go/internal/domain/audience"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	notBlankTag = "notblank"
	audienceTag = "audience"
)

func init() {
	validate = validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation(audienceTag, func(fl validator.FieldLevel) bool {
		_, err := audience.Parse(fl.Field().String())
		return err == nil
	})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, audienceTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
	}
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case audienceTag:
		return fe.Field() + " must be all, students or faculty"
	default:
		return fe.Error()
	}
}

// ValidationMessage renders validation errors as one sorted sentence per
// field, joined by "; ".
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(translator))
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}

// DecodeValid decodes the JSON body into dst and validates it. On failure it
// writes the 400 response and returns false. Audience violations use the
// invalid_audience code.
func DecodeValid(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		code := "invalid_request"
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Tag() == audienceTag {
					code = "invalid_audience"
				}
			}
		}
		writeError(w, http.StatusBadRequest, code, ValidationMessage(err))
		return false
	}
	return true
}

// ParseID normalizes a path id. Anything but a UUID can never match a row.
func ParseID(value string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
