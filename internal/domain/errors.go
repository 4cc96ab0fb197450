package domain

import "errors"

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidPrice        = errors.New("price is not a number")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrEmailRequired       = errors.New("email is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrCreatorNotFound     = errors.New("creator does not exist")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidID           = errors.New("invalid id")
	ErrHashing             = errors.New("credential hashing failed")
)

// IsValidation reports whether err is one of the input validation
// sentinels, as opposed to a conflict, referential, or collaborator
// failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrTitleRequired,
		ErrDescriptionRequired,
		ErrInvalidPrice,
		ErrNegativePrice,
		ErrEmailRequired,
		ErrPasswordRequired,
		ErrInvalidID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
