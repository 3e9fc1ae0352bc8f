package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)

var indexRegex = regexp.MustCompile(`\[(\d+)\]`)

// Layout names shown in messages
var dateLayoutNames = map[string]string{
	"2006-01-02": "Y-m-d",
	"15:04":      "H:i",
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// FieldErrors converts binding validation failures into messages keyed by
// dotted request paths such as "selected_foods.0.price".
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe.Namespace())
		if _, exists := fields[key]; exists {
			continue
		}
		fields[key] = message(key, fe)
	}
	return fields, true
}

func fieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexRegex.ReplaceAllString(namespace, ".$1")
}

func message(key string, fe validator.FieldError) string {
	attr := strings.ReplaceAll(key, "_", " ")

	switch fe.Tag() {
	case "required":
		return "The " + attr + " field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return "The " + attr + " field must not be greater than " + fe.Param() + " characters."
		}
		return "The " + attr + " field must not be greater than " + fe.Param() + "."
	case "min":
		if fe.Kind() == reflect.String {
			return "The " + attr + " field must be at least " + fe.Param() + " characters."
		}
		return "The " + attr + " field must be at least " + fe.Param() + "."
	case "email":
		return "The " + attr + " field must be a valid email address."
	case "uuid", "oneof":
		return "The selected " + attr + " is invalid."
	case "datetime":
		layout := fe.Param()
		if name, ok := dateLayoutNames[layout]; ok {
			layout = name
		}
		return "The " + attr + " field must match the format " + layout + "."
	case "phone":
		return "The " + attr + " field format is invalid."
	default:
		return "The " + attr + " field is invalid."
	}
}

// TypeError maps a JSON value of the wrong type to its field key and message.
// Element indexes are not known here, so "selected_foods.price" stays unindexed.
func TypeError(e *json.UnmarshalTypeError) (string, string) {
	key := e.Field
	attr := strings.ReplaceAll(key, "_", " ")

	t := e.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return key, "The " + attr + " field must be an integer."
	case reflect.Float32, reflect.Float64:
		return key, "The " + attr + " field must be a number."
	case reflect.String:
		return key, "The " + attr + " field must be a string."
	case reflect.Slice:
		return key, "The " + attr + " field must be an array."
	default:
		return key, "The " + attr + " field is invalid."
	}
}
