package controllers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("extrakeys", validExtrasKeys)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validExtrasKeys exige que las claves de extras sean nombres de campo simples:
// no vacías, sin '.' y sin '$' inicial, porque en el PUT se aplican como
// extras.<clave> dentro de $set.
func validExtrasKeys(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Map {
		return true
	}
	for _, k := range f.MapKeys() {
		key := k.String()
		if key == "" || strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
			return false
		}
	}
	return true
}

// validationDetail resume los errores del validador como "campo: regla".
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ""
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}
	return strings.Join(parts, "; ")
}
