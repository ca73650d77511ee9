package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var einRe = regexp.MustCompile(`^\d{2}-\d{7}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ein", validateEIN)
	}
}

// validateEIN accepts the IRS employer identification number format,
// two digits, a dash, seven digits.
func validateEIN(fl validator.FieldLevel) bool {
	return einRe.MatchString(fl.Field().String())
}

// TrimStruct trims surrounding whitespace from every exported string
// field (including *string) of a struct pointer. Charity names keep
// their interior punctuation untouched; they feed the signed cart.
func TrimStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
