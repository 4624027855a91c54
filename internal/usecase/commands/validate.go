package commands

import (
	"strings"

	"meetslot/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs tag validation and marks any failure as ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return errs.Mark(err, ErrValidation)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" failed on "+fe.Tag())
	}
	return errs.Mark(errs.New(strings.Join(fields, "; ")), ErrValidation)
}

func invalid(err error) error {
	return errs.Mark(err, ErrValidation)
}
