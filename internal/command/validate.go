package command

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateInput(name string, input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%s: invalid input: %w", name, err)
	}
	return nil
}
