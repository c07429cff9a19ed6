package services

import (
	"errors"
	"fmt"

	"nailstudio-backend/repository"
)

var (
	ErrSlotTaken           = errors.New("slot already taken")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotCompleted        = errors.New("appointment is not completed")
	ErrThankYouNotDue      = errors.New("thank-you message is not due yet")
	ErrThankYouAlreadySent = errors.New("thank-you message already sent")
)

// ValidationError carries a message meant to be shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError and returns its message.
func IsValidation(err error) (string, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Message, true
	}
	return "", false
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
