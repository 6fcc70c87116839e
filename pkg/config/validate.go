package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the parts of a config the decoder cannot: deployment types
// and the branch of on-branch deployments.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	return validateStruct(cfg, "invalid garnix config")
}

func validateStruct(v interface{}, message string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Wrap(err, errors.ErrConfigValid, message)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return errors.Newf(errors.ErrConfigValid, "%s: %s", message, strings.Join(problems, "; ")).
		WithDetail("fields", problems)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "required_if":
		return fmt.Sprintf("%s is required when %s", fe.Namespace(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}
