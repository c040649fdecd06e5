package service

import (
	"errors"
	"fmt"
)

// ValidationError signale une entrée malformée ou incomplète (4xx, jamais retentée)
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation indique si l'erreur est une erreur de validation
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
