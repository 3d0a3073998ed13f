package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"gofinanceiro/internal/domain"
	apperror "gofinanceiro/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Os nomes dos campos nos erros seguem a tag json, que é o que o cliente enviou.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal é tratado como número para que required/gt funcionem.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// domain.Date vazia é tratada como string vazia (required falha).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(domain.Date); ok {
			return d.String()
		}
		return ""
	}, domain.Date{})

	return v
}

// Struct valida as tags `validate` do payload.
// Falhas viram um ValidationError com o mapa campo -> regra violada.
func Struct(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInternalError("falha ao validar o payload", err)
	}

	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
		names = append(names, fe.Field())
	}
	return apperror.NewFieldValidationError("campos inválidos: "+strings.Join(names, ", "), fields)
}
