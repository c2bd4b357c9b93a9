package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// StructFields runs the struct tag validators on s and flattens the failed
// fields into a single error suitable for a client-facing message.
func StructFields(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	failed := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		failed = append(
			failed,
			fmt.Sprintf(
				"%s failed on '%s'",
				fieldErr.Field(),
				fieldErr.Tag(),
			),
		)
	}

	return fmt.Errorf(
		"validation failed: %s",
		strings.Join(failed, ", "),
	)
}
