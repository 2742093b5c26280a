package services

import (
	"errors"
	"reflect"
	"strings"

	"portfolio-api/models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// Validator checks request structs and reports failures keyed by JSON field name.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() *Validator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on duplicate tags, which cannot happen on a fresh instance.
	_ = entranslations.RegisterDefaultTranslations(validate, trans)

	return &Validator{validate: validate, translator: trans}
}

// Struct validates every tagged field of s.
func (v *Validator) Struct(s interface{}) error {
	return v.translate(v.validate.Struct(s))
}

// StructExcept validates s while skipping the named struct fields.
func (v *Validator) StructExcept(s interface{}, fields ...string) error {
	return v.translate(v.validate.StructExcept(s, fields...))
}

func (v *Validator) translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Translate(v.translator)
	}
	return models.ErrorValidation{Fields: fields}
}

// requireFields fails when any named value is blank.
func requireFields(values map[string]string) error {
	fields := map[string]string{}
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			fields[name] = name + " is a required field"
		}
	}
	if len(fields) > 0 {
		return models.ErrorValidation{Fields: fields}
	}
	return nil
}
