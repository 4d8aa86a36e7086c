package descriptor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/floatfield/internal/styles"
	fielderrors "github.com/alexisbeaulieu97/floatfield/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by
// the descriptor package. The preset rules delegate to the styles
// parsers so the closed sets have a single definition.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("shape_preset", func(fl validator.FieldLevel) bool {
			_, err := styles.ParseShape(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("depth_preset", func(fl validator.FieldLevel) bool {
			_, err := styles.ParseDepth(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("radius_preset", func(fl validator.FieldLevel) bool {
			_, err := styles.ParseCornerRadius(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("border_preset", func(fl validator.FieldLevel) bool {
			_, err := styles.ParseBorderWidth(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a descriptor against the struct rules and reports the
// first failure as a typed validation error.
func Validate(d *Field) error {
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		message := fmt.Sprintf("failed %q constraint", first.Tag())
		return fielderrors.NewValidationError(first.Namespace(), message, err)
	}

	return fielderrors.NewValidationError("", err.Error(), err)
}
